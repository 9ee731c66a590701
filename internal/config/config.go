// Package config is the file-backed settings store for ghexplorer.
// Settings live in a TOML file under ~/.ghexplorer; credentials can
// also come from the GITHUB_USERNAME / GITHUB_TOKEN environment, which
// takes precedence over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

const (
	// EnvUsername is the environment override for the GitHub username.
	EnvUsername = "GITHUB_USERNAME"

	// EnvToken is the environment override for the GitHub token.
	EnvToken = "GITHUB_TOKEN"
)

// Settings is the persisted configuration.
type Settings struct {
	// Credential is the stored username/token pair.
	Credential domain.Credential `toml:"github"`

	// Workers bounds the enrichment fan-out pool. Zero means the
	// built-in default.
	Workers int `toml:"workers,omitempty"`
}

// Store is a TOML-file settings store.
type Store struct {
	mu       sync.RWMutex
	filePath string
	settings Settings
}

// NewStore creates a store rooted at configDir. If configDir is empty,
// defaults to ~/.ghexplorer/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".ghexplorer")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Load reads the settings file from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	s.settings = settings
	return nil
}

// Save writes the settings file to disk. The token is a credential, so
// the file is owner-readable only.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := toml.Marshal(s.settings)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Credential returns the effective credential: environment overrides
// first, then the stored pair.
func (s *Store) Credential() domain.Credential {
	s.mu.RLock()
	cred := s.settings.Credential
	s.mu.RUnlock()

	if v := os.Getenv(EnvUsername); v != "" {
		cred.Username = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cred.Token = v
	}
	return cred
}

// SetCredential stores a username/token pair.
func (s *Store) SetCredential(cred domain.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Credential = cred
}

// Workers returns the configured fan-out pool size (0 = default).
func (s *Store) Workers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Workers
}

// SetWorkers stores the fan-out pool size.
func (s *Store) SetWorkers(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Workers = n
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.filePath
}
