// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Environment variables overriding the config file.
const (
	EnvAPIURL  = "TASKDECK_API_URL"
	EnvAuthURL = "TASKDECK_AUTH_URL"
	EnvAuthKey = "TASKDECK_AUTH_KEY"
)

// Loader loads configuration from a TOML file with environment overrides.
type Loader struct {
	confDir string // taskdeck config directory (e.g. ~/.config/taskdeck)
}

// NewLoader creates a Loader for the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: domain.DefaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// Dir returns the config directory the loader reads from.
func (l *Loader) Dir() string {
	return l.confDir
}

// Load returns the configuration merged from the config file and the
// environment. Environment variables take precedence. The result is not
// validated; call Validate at startup to fail fast on a missing API URL.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.confDir != "" {
		path := filepath.Join(l.confDir, domain.ConfigFileName)
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No file; environment may still supply everything.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvAuthURL); v != "" {
		cfg.Auth.BaseURL = v
	}
	if v := os.Getenv(EnvAuthKey); v != "" {
		cfg.Auth.APIKey = v
	}

	return cfg, nil
}

// Save writes the configuration to the config file, creating the
// directory if needed.
func (l *Loader) Save(cfg *domain.Config) error {
	if l.confDir == "" {
		return errors.New("config directory could not be resolved")
	}
	if err := os.MkdirAll(l.confDir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	path := filepath.Join(l.confDir, domain.ConfigFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
