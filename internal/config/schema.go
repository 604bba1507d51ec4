package config

// Config is the top-level inkctl configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api" yaml:"api"`
	Reader ReaderConfig `mapstructure:"reader" yaml:"reader"`
	Cache  CacheConfig  `mapstructure:"cache" yaml:"cache"`
}

// CacheConfig controls the offline chapter cache.
type CacheConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// APIConfig holds Inkwell backend connection settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// ReaderConfig holds defaults for the reading view. Values are validated by
// the reader session, not here — an unknown theme or out-of-range font size
// falls back to the session defaults.
type ReaderConfig struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`         // light, dark, sepia
	FontSize int    `mapstructure:"font_size" yaml:"font_size"` // 14..32
	ViewMode string `mapstructure:"view_mode" yaml:"view_mode"` // paginate, scroll
}
