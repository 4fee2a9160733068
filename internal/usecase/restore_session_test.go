package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestRestoreSession_Execute_NoCache(t *testing.T) {
	sessions := session.NewStore()
	clock := &testutil.MockClock{NowTime: time.Now()}

	uc := NewRestoreSession(&testutil.MockIdentityProvider{}, &testutil.MockTokenStore{}, sessions, clock, nil)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Nil(t, out.Identity)
	assert.False(t, sessions.Loading())
	assert.Nil(t, sessions.Identity())
}

func TestRestoreSession_Execute_ValidToken(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	creds := testCreds("a@x.com")
	creds.ExpiresAt = now.Add(time.Hour)

	sessions := session.NewStore()
	provider := &testutil.MockIdentityProvider{}
	clock := &testutil.MockClock{NowTime: now}

	uc := NewRestoreSession(provider, &testutil.MockTokenStore{Stored: creds}, sessions, clock, nil)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.Identity)
	assert.Equal(t, "a@x.com", out.Identity.Email)
	assert.Zero(t, provider.RefreshCalls)
	assert.Equal(t, "a@x.com", sessions.Identity().Email)
}

func TestRestoreSession_Execute_ExpiredRefreshes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stale := testCreds("a@x.com")
	stale.ExpiresAt = now.Add(-time.Minute)

	fresh := &domain.Credentials{
		IDToken:      "fresh-token",
		RefreshToken: "fresh-refresh",
		ExpiresAt:    now.Add(time.Hour),
	}

	tokens := &testutil.MockTokenStore{Stored: stale}
	provider := &testutil.MockIdentityProvider{Creds: fresh}
	sessions := session.NewStore()

	uc := NewRestoreSession(provider, tokens, sessions, &testutil.MockClock{NowTime: now}, nil)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, provider.RefreshCalls)
	// Identity kept from the stale credentials when the refresh grant
	// carries no claims.
	require.NotNil(t, out.Identity)
	assert.Equal(t, "a@x.com", out.Identity.Email)
	assert.Equal(t, "fresh-token", tokens.Stored.IDToken)
}

func TestRestoreSession_Execute_RefreshFailsSignsOut(t *testing.T) {
	now := time.Now()
	stale := testCreds("a@x.com")
	stale.ExpiresAt = now.Add(-time.Minute)

	tokens := &testutil.MockTokenStore{Stored: stale}
	provider := &testutil.MockIdentityProvider{
		RefreshErr: &domain.AuthError{Code: domain.AuthGeneric, Message: "TOKEN_EXPIRED"},
	}
	sessions := session.NewStore()

	uc := NewRestoreSession(provider, tokens, sessions, &testutil.MockClock{NowTime: now}, nil)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Nil(t, out.Identity)
	assert.Nil(t, tokens.Stored)
	assert.False(t, sessions.Loading())
	assert.Nil(t, sessions.Identity())
}
