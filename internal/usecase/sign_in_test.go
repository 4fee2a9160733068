package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func testCreds(email string) *domain.Credentials {
	return &domain.Credentials{
		Identity:     domain.Identity{UID: "uid-1", Email: email, DisplayName: "Alice"},
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
	}
}

func TestSignIn_Execute_Success(t *testing.T) {
	provider := &testutil.MockIdentityProvider{Creds: testCreds("a@x.com")}
	tokens := &testutil.MockTokenStore{}
	sessions := session.NewStore()

	uc := NewSignIn(provider, tokens, sessions, nil)
	out, err := uc.Execute(context.Background(), SignInInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", out.Identity.Email)
	// Session published and credentials persisted.
	require.NotNil(t, sessions.Identity())
	assert.Equal(t, "a@x.com", sessions.Identity().Email)
	require.NotNil(t, tokens.Stored)
	assert.Equal(t, "id-token", tokens.Stored.IDToken)
}

func TestSignIn_Execute_WrongPassword(t *testing.T) {
	provider := &testutil.MockIdentityProvider{
		SignInErr: &domain.AuthError{Code: domain.AuthWrongPassword},
	}
	sessions := session.NewStore()

	uc := NewSignIn(provider, &testutil.MockTokenStore{}, sessions, nil)
	_, err := uc.Execute(context.Background(), SignInInput{Email: "a@x.com", Password: "bad"})

	assert.Equal(t, domain.AuthWrongPassword, domain.AuthCodeOf(err))
	// Session remains unresolved: the caller decides how to surface it.
	assert.True(t, sessions.Loading())
}

func TestSignInWithGoogle_Execute(t *testing.T) {
	provider := &testutil.MockIdentityProvider{Creds: testCreds("g@x.com")}
	tokens := &testutil.MockTokenStore{}
	sessions := session.NewStore()

	uc := NewSignInWithGoogle(provider, tokens, sessions, nil)
	out, err := uc.Execute(context.Background(), SignInWithGoogleInput{AccessToken: "oauth"})
	require.NoError(t, err)

	assert.Equal(t, "g@x.com", out.Identity.Email)
	assert.NotNil(t, tokens.Stored)
}

func TestSignOut_Execute(t *testing.T) {
	tokens := &testutil.MockTokenStore{Stored: testCreds("a@x.com")}
	sessions := session.NewStore()
	sessions.Set(testCreds("a@x.com"))

	var sawSignOut bool
	sessions.Subscribe(func(id *domain.Identity) {
		if id == nil {
			sawSignOut = true
		}
	})

	uc := NewSignOut(tokens, sessions, nil)
	require.NoError(t, uc.Execute(context.Background()))

	assert.Nil(t, tokens.Stored)
	assert.Nil(t, sessions.Identity())
	assert.True(t, sawSignOut)
}
