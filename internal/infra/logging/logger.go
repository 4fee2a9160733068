// Package logging provides file-backed logging for taskdeck.
// Logs go to taskdeck.log under the config directory so TUI rendering
// is never interleaved with log output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the name of the log file under the config directory.
const FileName = "taskdeck.log"

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to the log file under confDir.
// The returned closer flushes the file; callers should close it on exit.
// If confDir is empty or the file cannot be opened, logging is discarded.
func New(confDir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if confDir == "" {
		return discard(level), nopCloser{}, nil
	}
	if err := os.MkdirAll(confDir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("create config directory: %w", err)
	}
	path := filepath.Join(confDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func discard(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
