package domain

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the taskdeck configuration file.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	API  APIConfig  `toml:"api"`
	Auth AuthConfig `toml:"auth"`
	Log  LogConfig  `toml:"log"`
}

// APIConfig holds settings for the task API from the [api] section.
type APIConfig struct {
	BaseURL string `toml:"base_url,omitempty"` // Task API base URL (required)
}

// AuthConfig holds settings for the identity provider from the [auth] section.
type AuthConfig struct {
	BaseURL string `toml:"base_url,omitempty"` // Identity provider base URL
	APIKey  string `toml:"api_key,omitempty"`  // Provider project API key
}

// LogConfig holds settings for logging from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is usable. A missing task API
// base URL fails fast here rather than at the first request.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingAPIURL
	}
	return nil
}

// ConfigDir returns the taskdeck configuration directory under the
// given config home (e.g. ~/.config).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, "taskdeck")
}

// DefaultConfigDir resolves the configuration directory from
// XDG_CONFIG_HOME or the user home directory.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return ConfigDir(configHome)
}
