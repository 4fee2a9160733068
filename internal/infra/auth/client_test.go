package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// fixedClock is a test double for domain.Clock.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// makeIDToken builds a signed token whose claims carry identity fields.
// The client never verifies the signature, so any key works.
func makeIDToken(t *testing.T, email, name, picture string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":   email,
		"name":    name,
		"picture": picture,
		"user_id": "uid-1",
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func newTestClient(srv *httptest.Server, now time.Time) *Client {
	return NewWithDeps(srv.URL, "test-key", srv.Client(), fixedClock{now: now})
}

func TestClient_SignIn_Success(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	idToken := makeIDToken(t, "a@x.com", "Alice", "http://img/a.png")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":      "uid-1",
			"email":        "a@x.com",
			"idToken":      idToken,
			"refreshToken": "refresh-1",
			"expiresIn":    "3600",
		})
	}))
	defer srv.Close()

	creds, err := newTestClient(srv, now).SignIn(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", creds.Identity.Email)
	assert.Equal(t, "Alice", creds.Identity.DisplayName)
	assert.Equal(t, "http://img/a.png", creds.Identity.PhotoURL)
	assert.Equal(t, "refresh-1", creds.RefreshToken)
	assert.Equal(t, now.Add(time.Hour), creds.ExpiresAt)
	assert.False(t, creds.Expired(now))
	assert.True(t, creds.Expired(now.Add(2*time.Hour)))
}

func TestClient_SignIn_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "EMAIL_NOT_FOUND"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv, time.Now()).SignIn(context.Background(), "a@x.com", "secret")
	assert.Equal(t, domain.AuthUserNotFound, domain.AuthCodeOf(err))
}

func TestClient_SignIn_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "INVALID_LOGIN_CREDENTIALS"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv, time.Now()).SignIn(context.Background(), "a@x.com", "bad")
	assert.Equal(t, domain.AuthWrongPassword, domain.AuthCodeOf(err))
}

func TestClient_SignIn_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewWithDeps(srv.URL, "k", &http.Client{}, domain.RealClock{})
	_, err := c.SignIn(context.Background(), "a@x.com", "secret")
	assert.Equal(t, domain.AuthNetworkFailure, domain.AuthCodeOf(err))
}

func TestClient_CreateAccount_EmailExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signUp", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "EMAIL_EXISTS"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv, time.Now()).CreateAccount(context.Background(), "a@x.com", "secret")
	assert.Equal(t, domain.AuthEmailExists, domain.AuthCodeOf(err))
}

func TestClient_SignInWithGoogle(t *testing.T) {
	idToken := makeIDToken(t, "g@x.com", "Gabe", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithIdp", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body["postBody"], "access_token=oauth-token")
		assert.Contains(t, body["postBody"], "providerId=google.com")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":      "uid-2",
			"email":        "g@x.com",
			"idToken":      idToken,
			"refreshToken": "refresh-2",
			"expiresIn":    "3600",
		})
	}))
	defer srv.Close()

	creds, err := newTestClient(srv, time.Now()).SignInWithGoogle(context.Background(), "oauth-token")
	require.NoError(t, err)
	assert.Equal(t, "g@x.com", creds.Identity.Email)
	assert.Equal(t, "Gabe", creds.Identity.DisplayName)
}

func TestClient_UpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:update", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "token-1", body["idToken"])
		assert.Equal(t, "Alice B", body["displayName"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":     "uid-1",
			"email":       "a@x.com",
			"displayName": "Alice B",
			"photoUrl":    "http://img/b.png",
		})
	}))
	defer srv.Close()

	identity, err := newTestClient(srv, time.Now()).UpdateProfile(context.Background(), "token-1", "Alice B", "http://img/b.png")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", identity.DisplayName)
	assert.Equal(t, "http://img/b.png", identity.PhotoURL)
}

func TestClient_Refresh(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	idToken := makeIDToken(t, "a@x.com", "Alice", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/token", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id_token":      idToken,
			"refresh_token": "refresh-next",
			"expires_in":    "3600",
		})
	}))
	defer srv.Close()

	creds, err := newTestClient(srv, now).Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "refresh-next", creds.RefreshToken)
	assert.Equal(t, "a@x.com", creds.Identity.Email)
	assert.Equal(t, now.Add(time.Hour), creds.ExpiresAt)
}
