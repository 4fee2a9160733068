package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// SignInWithGoogleInput contains the parameters for federated sign-in.
type SignInWithGoogleInput struct {
	AccessToken string // Google OAuth access token obtained out-of-band
}

// SignInWithGoogleOutput contains the result of federated sign-in.
type SignInWithGoogleOutput struct {
	Identity domain.Identity
}

// SignInWithGoogle is the use case for Google federated sign-in. The
// OAuth browser dance is the provider's job; this exchanges the
// resulting access token for a session.
type SignInWithGoogle struct {
	provider domain.IdentityProvider
	tokens   domain.TokenStore
	sessions *session.Store
	logger   *slog.Logger
}

// NewSignInWithGoogle creates a new SignInWithGoogle use case.
func NewSignInWithGoogle(provider domain.IdentityProvider, tokens domain.TokenStore, sessions *session.Store, logger *slog.Logger) *SignInWithGoogle {
	return &SignInWithGoogle{
		provider: provider,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute exchanges the token and publishes the identity.
func (uc *SignInWithGoogle) Execute(ctx context.Context, in SignInWithGoogleInput) (*SignInWithGoogleOutput, error) {
	creds, err := uc.provider.SignInWithGoogle(ctx, in.AccessToken)
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(creds); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.sessions.Set(creds)

	if uc.logger != nil {
		uc.logger.Info("signed in with google", "email", creds.Identity.Email)
	}
	return &SignInWithGoogleOutput{Identity: creds.Identity}, nil
}
