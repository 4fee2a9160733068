package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// CreateAccountInput contains the parameters for registration.
// Fields are ordered to minimize memory padding.
type CreateAccountInput struct {
	Name            string // Display name (required)
	Email           string // Account email (required)
	Password        string // Account password (required)
	ConfirmPassword string // Must match Password
	Team            string // Team captured at registration only
	PhotoURL        string // Profile photo URL
}

// CreateAccountOutput contains the result of registration.
type CreateAccountOutput struct {
	Identity domain.Identity
}

// CreateAccount is the use case for registering a new account: create it
// at the provider, set the profile, and register the user record with
// the task backend.
type CreateAccount struct {
	provider  domain.IdentityProvider
	directory domain.UserDirectory
	tokens    domain.TokenStore
	sessions  *session.Store
	logger    *slog.Logger
}

// NewCreateAccount creates a new CreateAccount use case.
func NewCreateAccount(provider domain.IdentityProvider, directory domain.UserDirectory, tokens domain.TokenStore, sessions *session.Store, logger *slog.Logger) *CreateAccount {
	return &CreateAccount{
		provider:  provider,
		directory: directory,
		tokens:    tokens,
		sessions:  sessions,
		logger:    logger,
	}
}

// Execute registers the account. The password mismatch check
// short-circuits before any provider call.
func (uc *CreateAccount) Execute(ctx context.Context, in CreateAccountInput) (*CreateAccountOutput, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	creds, err := uc.provider.CreateAccount(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	identity, err := uc.provider.UpdateProfile(ctx, creds.IDToken, in.Name, in.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("set profile: %w", err)
	}
	creds.Identity = *identity

	if err := uc.directory.RegisterUser(ctx, domain.UserRecord{
		Name:     in.Name,
		Email:    in.Email,
		Team:     in.Team,
		PhotoURL: in.PhotoURL,
		Role:     domain.DefaultRole,
	}); err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(creds); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.sessions.Set(creds)

	if uc.logger != nil {
		uc.logger.Info("account created", "email", in.Email, "team", in.Team)
	}
	return &CreateAccountOutput{Identity: creds.Identity}, nil
}
