package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := New(dir, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("task created", "id", "abc123")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "task created")
	assert.Contains(t, string(data), "abc123")
}

func TestNew_EmptyDirDiscards(t *testing.T) {
	logger, closer, err := New("", slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("goes nowhere")
	assert.NoError(t, closer.Close())
}
