package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
)

// RestoreSessionOutput contains the result of session re-hydration.
type RestoreSessionOutput struct {
	Identity *domain.Identity // nil when no session could be restored
}

// RestoreSession is the use case for re-hydrating the session from the
// credential cache at startup, the way a browser session survives a
// page reload. An expired ID token is refreshed once; a failed refresh
// resolves to signed-out rather than an error.
type RestoreSession struct {
	provider domain.IdentityProvider
	tokens   domain.TokenStore
	sessions *session.Store
	clock    domain.Clock
	logger   *slog.Logger
}

// NewRestoreSession creates a new RestoreSession use case.
func NewRestoreSession(provider domain.IdentityProvider, tokens domain.TokenStore, sessions *session.Store, clock domain.Clock, logger *slog.Logger) *RestoreSession {
	return &RestoreSession{
		provider: provider,
		tokens:   tokens,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// Execute resolves the session state. It always leaves the session
// store resolved (signed in or out), never loading.
func (uc *RestoreSession) Execute(ctx context.Context) (*RestoreSessionOutput, error) {
	creds, err := uc.tokens.Load()
	if err != nil {
		uc.sessions.Set(nil)
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil {
		uc.sessions.Set(nil)
		return &RestoreSessionOutput{}, nil
	}

	if creds.Expired(uc.clock.Now()) {
		refreshed, err := uc.provider.Refresh(ctx, creds.RefreshToken)
		if err != nil {
			if uc.logger != nil {
				uc.logger.Warn("session refresh failed", "error", err)
			}
			_ = uc.tokens.Clear()
			uc.sessions.Set(nil)
			return &RestoreSessionOutput{}, nil
		}
		// Identity claims may be absent from the refresh grant; keep
		// the previously known identity in that case.
		if refreshed.Identity.Email == "" {
			refreshed.Identity = creds.Identity
		}
		creds = refreshed
		if err := uc.tokens.Save(creds); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}

	uc.sessions.Set(creds)
	identity := creds.Identity
	return &RestoreSessionOutput{Identity: &identity}, nil
}
