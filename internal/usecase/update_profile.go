package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// UpdateProfileInput contains the parameters for a profile update.
type UpdateProfileInput struct {
	Name     string // New display name
	PhotoURL string // New photo URL
}

// UpdateProfileOutput contains the result of a profile update.
type UpdateProfileOutput struct {
	Identity domain.Identity
}

// UpdateProfile is the use case for changing the signed-in identity's
// display name and photo.
type UpdateProfile struct {
	provider domain.IdentityProvider
	tokens   domain.TokenStore
	sessions *session.Store
}

// NewUpdateProfile creates a new UpdateProfile use case.
func NewUpdateProfile(provider domain.IdentityProvider, tokens domain.TokenStore, sessions *session.Store) *UpdateProfile {
	return &UpdateProfile{
		provider: provider,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Execute updates the profile at the provider and propagates the new
// identity to the session and the credential cache.
func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*UpdateProfileOutput, error) {
	creds := uc.sessions.Credentials()
	if creds == nil {
		return nil, domain.ErrNotAuthenticated
	}

	identity, err := uc.provider.UpdateProfile(ctx, creds.IDToken, in.Name, in.PhotoURL)
	if err != nil {
		return nil, err
	}

	uc.sessions.UpdateIdentity(*identity)
	creds.Identity = *identity
	if err := uc.tokens.Save(creds); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &UpdateProfileOutput{Identity: *identity}, nil
}
