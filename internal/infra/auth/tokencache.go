package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CacheFileName is the name of the credential cache file under the
// config directory.
const CacheFileName = "credentials.json"

// Ensure TokenCache implements domain.TokenStore.
var _ domain.TokenStore = (*TokenCache)(nil)

// TokenCache persists credentials as a JSON file so a signed-in session
// survives process restarts.
type TokenCache struct {
	path string
}

// NewTokenCache creates a TokenCache under the given config directory.
func NewTokenCache(confDir string) *TokenCache {
	return &TokenCache{path: filepath.Join(confDir, CacheFileName)}
}

// Load returns the stored credentials, or nil if none exist.
func (c *TokenCache) Load() (*domain.Credentials, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential cache: %w", err)
	}
	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credential cache: %w", err)
	}
	return &creds, nil
}

// Save stores the credentials. The file is written atomically and is
// readable only by the owner.
func (c *TokenCache) Save(creds *domain.Credentials) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credential cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace credential cache: %w", err)
	}
	return nil
}

// Clear removes any stored credentials.
func (c *TokenCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential cache: %w", err)
	}
	return nil
}
