// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// SignInInput contains the parameters for signing in.
type SignInInput struct {
	Email    string // Account email (required)
	Password string // Account password (required)
}

// SignInOutput contains the result of signing in.
type SignInOutput struct {
	Identity domain.Identity // The signed-in identity
}

// SignIn is the use case for email/password authentication.
type SignIn struct {
	provider domain.IdentityProvider
	tokens   domain.TokenStore
	sessions *session.Store
	logger   *slog.Logger
}

// NewSignIn creates a new SignIn use case.
func NewSignIn(provider domain.IdentityProvider, tokens domain.TokenStore, sessions *session.Store, logger *slog.Logger) *SignIn {
	return &SignIn{
		provider: provider,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute authenticates against the provider and publishes the identity
// to the process-wide session.
func (uc *SignIn) Execute(ctx context.Context, in SignInInput) (*SignInOutput, error) {
	creds, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(creds); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.sessions.Set(creds)

	if uc.logger != nil {
		uc.logger.Info("signed in", "email", creds.Identity.Email)
	}
	return &SignInOutput{Identity: creds.Identity}, nil
}
