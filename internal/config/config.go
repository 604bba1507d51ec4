package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwell-labs/inkctl/internal/cache"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Dir returns the inkctl config directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "inkctl")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yml")
}

// TokenPath returns the path of the durable token file.
func TokenPath() string {
	return filepath.Join(Dir(), "tokens.yml")
}

// Load reads the config from disk (or env). Returns defaults if no file
// exists yet.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads a specific config file, falling back to INKCTL_CONFIG and
// then the default path when configPath is empty.
func LoadFrom(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("reader.theme", "dark")
	v.SetDefault("reader.font_size", 16)
	v.SetDefault("reader.view_mode", "paginate")
	v.SetDefault("cache.dir", cache.DefaultDir())

	v.SetEnvPrefix("INKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = os.Getenv("INKCTL_CONFIG")
	}
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — defaults apply.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
