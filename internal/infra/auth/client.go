// Package auth provides the HTTP client for the external identity
// provider and the on-disk credential cache that re-hydrates a session
// across process restarts.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Client implements domain.IdentityProvider.
var _ domain.IdentityProvider = (*Client)(nil)

// Client talks to an Identity-Toolkit-style REST provider. The provider
// owns password checking, federated sign-in, and profile storage; this
// client only translates calls and classifies failures.
type Client struct {
	http    *http.Client
	clock   domain.Clock
	baseURL string
	apiKey  string
}

// New creates a Client for the given provider base URL and project API key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		clock:   domain.RealClock{},
	}
}

// NewWithDeps creates a Client with a custom http.Client and clock.
// This is useful for testing.
func NewWithDeps(baseURL, apiKey string, hc *http.Client, clock domain.Clock) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    hc,
		clock:   clock,
	}
}

// sessionResponse is the provider's token grant payload.
type sessionResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // seconds, string-encoded
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Credentials, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var resp sessionResponse
	if err := c.post(ctx, "accounts:signInWithPassword", body, &resp); err != nil {
		return nil, err
	}
	return c.credentials(resp), nil
}

// SignInWithGoogle exchanges a Google OAuth access token for a session.
func (c *Client) SignInWithGoogle(ctx context.Context, accessToken string) (*domain.Credentials, error) {
	body := map[string]any{
		"postBody":          "access_token=" + accessToken + "&providerId=google.com",
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	}
	var resp sessionResponse
	if err := c.post(ctx, "accounts:signInWithIdp", body, &resp); err != nil {
		return nil, err
	}
	return c.credentials(resp), nil
}

// CreateAccount registers a new email/password account and signs it in.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (*domain.Credentials, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var resp sessionResponse
	if err := c.post(ctx, "accounts:signUp", body, &resp); err != nil {
		return nil, err
	}
	return c.credentials(resp), nil
}

// UpdateProfile sets the display name and photo URL on the account
// behind the ID token.
func (c *Client) UpdateProfile(ctx context.Context, idToken, name, photoURL string) (*domain.Identity, error) {
	body := map[string]any{
		"idToken":           idToken,
		"displayName":       name,
		"photoUrl":          photoURL,
		"returnSecureToken": false,
	}
	var resp sessionResponse
	if err := c.post(ctx, "accounts:update", body, &resp); err != nil {
		return nil, err
	}
	return &domain.Identity{
		UID:         resp.LocalID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoURL,
	}, nil
}

// refreshResponse is the token endpoint payload (snake_case, unlike the
// account endpoints).
type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}

// Refresh exchanges a refresh token for fresh credentials.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.Credentials, error) {
	body := map[string]any{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}
	var resp refreshResponse
	if err := c.post(ctx, "token", body, &resp); err != nil {
		return nil, err
	}
	creds := &domain.Credentials{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    c.expiry(resp.ExpiresIn),
		Identity:     identityFromToken(resp.IDToken),
	}
	return creds, nil
}

// credentials assembles domain credentials from a session response,
// preferring explicit response fields over ID-token claims.
func (c *Client) credentials(resp sessionResponse) *domain.Credentials {
	identity := identityFromToken(resp.IDToken)
	if resp.LocalID != "" {
		identity.UID = resp.LocalID
	}
	if resp.Email != "" {
		identity.Email = resp.Email
	}
	if resp.DisplayName != "" {
		identity.DisplayName = resp.DisplayName
	}
	if resp.PhotoURL != "" {
		identity.PhotoURL = resp.PhotoURL
	}
	return &domain.Credentials{
		Identity:     identity,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    c.expiry(resp.ExpiresIn),
	}
}

func (c *Client) expiry(expiresIn string) time.Time {
	var secs int64
	_, _ = fmt.Sscanf(expiresIn, "%d", &secs)
	if secs <= 0 {
		secs = 3600
	}
	return c.clock.Now().Add(time.Duration(secs) * time.Second)
}

// tokenClaims are the ID-token claims this client cares about. The token
// signature is the provider's concern; the claims are only used for
// display and the ownership email.
type tokenClaims struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
	UserID  string `json:"user_id"`
	jwt.RegisteredClaims
}

// identityFromToken decodes identity fields from the ID-token claims
// without verifying the signature.
func identityFromToken(idToken string) domain.Identity {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, &claims); err != nil {
		return domain.Identity{}
	}
	return domain.Identity{
		UID:         claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}
}

// providerError is the provider's error envelope.
type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// post issues one request against the provider. All failures surface as
// *domain.AuthError so callers can map codes to user-facing messages.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &domain.AuthError{Code: domain.AuthGeneric, Message: err.Error()}
	}

	u := c.baseURL + "/v1/" + endpoint
	if c.apiKey != "" {
		u += "?key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return &domain.AuthError{Code: domain.AuthGeneric, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.AuthError{Code: domain.AuthNetworkFailure, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var pe providerError
		_ = json.Unmarshal(raw, &pe)
		return &domain.AuthError{
			Code:    classify(pe.Error.Message),
			Message: pe.Error.Message,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.AuthError{Code: domain.AuthGeneric, Message: "decode response: " + err.Error()}
	}
	return nil
}

// classify maps provider error messages to auth codes.
func classify(message string) domain.AuthCode {
	switch {
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"):
		return domain.AuthUserNotFound
	case strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"):
		return domain.AuthWrongPassword
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		return domain.AuthEmailExists
	default:
		return domain.AuthGeneric
	}
}
