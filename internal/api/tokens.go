package api

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tokenFile is the durable form of the token pair. The two keys are fixed —
// they stand in for the localStorage entries of the original web client.
type tokenFile struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
}

// TokenStore persists the access/refresh pair across runs. The Client is
// its only caller; everything else reads tokens through the Client.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store writing to the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load returns the stored pair. A missing file yields empty tokens, not an
// error.
func (s *TokenStore) Load() (access, refresh string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", nil
		}
		return "", "", err
	}
	var tf tokenFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return "", "", err
	}
	return tf.AccessToken, tf.RefreshToken, nil
}

// Save writes the pair, creating parent directories as needed. The file is
// user-only readable.
func (s *TokenStore) Save(access, refresh string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(tokenFile{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the stored pair. Clearing an already-clear store succeeds.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
