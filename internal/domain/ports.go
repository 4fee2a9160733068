package domain

import (
	"context"
	"time"
)

// TaskService is the client of the remote task collection resource.
// Every call hits the network; there is no retry, batching, or caching.
type TaskService interface {
	// ListByEmail retrieves the full unfiltered task set for the owner email.
	ListByEmail(ctx context.Context, email string) ([]Task, error)

	// Get retrieves a single task by its server-assigned identifier.
	Get(ctx context.Context, id string) (*Task, error)

	// Create stores a new task and returns it with the server-assigned id.
	Create(ctx context.Context, task Task) (*Task, error)

	// Update replaces the full task record and returns the stored state.
	Update(ctx context.Context, id string, task Task) (*Task, error)

	// Delete removes a task by identifier.
	Delete(ctx context.Context, id string) error
}

// UserDirectory registers user profiles with the task backend.
type UserDirectory interface {
	// RegisterUser stores the profile document under /users/{email}.
	RegisterUser(ctx context.Context, rec UserRecord) error
}

// Credentials is the provider-issued session material for an identity.
type Credentials struct {
	Identity     Identity  `json:"identity"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Expired reports whether the ID token has passed its expiry at the
// given instant.
func (c *Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// IdentityProvider is the external authentication service. All failures
// surface as *AuthError with a provider-specific code.
type IdentityProvider interface {
	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (*Credentials, error)

	// SignInWithGoogle exchanges a Google OAuth access token for a session.
	SignInWithGoogle(ctx context.Context, accessToken string) (*Credentials, error)

	// CreateAccount registers a new email/password account and signs it in.
	CreateAccount(ctx context.Context, email, password string) (*Credentials, error)

	// UpdateProfile sets the display name and photo URL on the account
	// behind the ID token.
	UpdateProfile(ctx context.Context, idToken, name, photoURL string) (*Identity, error)

	// Refresh exchanges a refresh token for fresh credentials.
	Refresh(ctx context.Context, refreshToken string) (*Credentials, error)
}

// TokenStore persists credentials across process restarts so a session
// survives the way a browser session survives a page reload.
type TokenStore interface {
	// Load returns the stored credentials, or nil if none exist.
	Load() (*Credentials, error)

	// Save stores the credentials.
	Save(creds *Credentials) error

	// Clear removes any stored credentials.
	Clear() error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
