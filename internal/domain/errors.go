package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title too long")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNotAuthenticated   = errors.New("not authenticated (run 'taskdeck login' first)")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrMissingAPIURL      = errors.New("task API base URL is not configured (set api.base_url or TASKDECK_API_URL)")
)

// AuthCode classifies provider-reported authentication failures so views
// can map them to user-facing messages.
type AuthCode string

const (
	AuthUserNotFound   AuthCode = "user-not-found"
	AuthWrongPassword  AuthCode = "wrong-password"
	AuthEmailExists    AuthCode = "email-exists"
	AuthNetworkFailure AuthCode = "network-failure"
	AuthGeneric        AuthCode = "generic"
)

// AuthError is an authentication failure reported by the identity
// provider, tagged with a provider-specific code.
type AuthError struct {
	Code    AuthCode
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth error: %s", e.Code)
	}
	return fmt.Sprintf("auth error: %s: %s", e.Code, e.Message)
}

// AuthCodeOf extracts the AuthCode from an error chain.
// Non-auth errors report AuthGeneric.
func AuthCodeOf(err error) AuthCode {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return AuthGeneric
}

// ServerError is a non-2xx response from a remote collaborator.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error: status %d: %s", e.StatusCode, e.Body)
}

// NetworkError means the request never reached the server or the
// transport failed before a response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
