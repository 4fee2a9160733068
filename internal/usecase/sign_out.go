package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/session"
)

// SignOut is the use case for ending the session.
type SignOut struct {
	tokens   tokenClearer
	sessions *session.Store
	logger   *slog.Logger
}

type tokenClearer interface {
	Clear() error
}

// NewSignOut creates a new SignOut use case.
func NewSignOut(tokens tokenClearer, sessions *session.Store, logger *slog.Logger) *SignOut {
	return &SignOut{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute clears the credential cache and signs the session out.
func (uc *SignOut) Execute(_ context.Context) error {
	if err := uc.tokens.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	uc.sessions.Set(nil)

	if uc.logger != nil {
		uc.logger.Info("signed out")
	}
	return nil
}
