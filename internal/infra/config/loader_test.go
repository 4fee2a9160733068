package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestLoader_Load_NoFile(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.ErrorIs(t, cfg.Validate(), domain.ErrMissingAPIURL)
}

func TestLoader_Load_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[api]
base_url = "http://localhost:9000"

[auth]
base_url = "https://identity.example.com"
api_key = "test-key"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))

	loader := NewLoaderWithDir(dir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, "https://identity.example.com", cfg.Auth.BaseURL)
	assert.Equal(t, "test-key", cfg.Auth.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[api]
base_url = "http://localhost:9000"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
	t.Setenv(EnvAPIURL, "http://override:9000")
	t.Setenv(EnvAuthKey, "env-key")

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://override:9000", cfg.API.BaseURL)
	assert.Equal(t, "env-key", cfg.Auth.APIKey)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("api = {"), 0o600))

	_, err := NewLoaderWithDir(dir).Load()
	assert.Error(t, err)
}

func TestLoader_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoaderWithDir(dir)

	cfg := domain.NewDefaultConfig()
	cfg.API.BaseURL = "http://localhost:9000"
	require.NoError(t, loader.Save(cfg))

	loaded, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", loaded.API.BaseURL)
}
