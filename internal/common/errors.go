// Package common defines shared constants and sentinel errors used across
// client and server layers of nutritrack. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Caller-facing taxonomy.
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("auth error")
	ErrNetwork    = errors.New("network error")
	ErrUnexpected = errors.New("unexpected error")

	// ErrNoSession is returned when an operation needs a principal but the
	// caller passed none.
	ErrNoSession = errors.New("no active session")
)

// Preset credential errors. Login must only ever surface ErrInvalidCredentials.
var (
	ErrInvalidCredentials = &AuthError{Message: "invalid credentials"}
	ErrEmailTaken         = &AuthError{Message: "email already registered"}
	ErrAccountCreation    = &AuthError{Message: "could not create account"}
)

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// AuthError is a credential rejection. Cause is kept for errors.Is checks
// (e.g. ErrNetwork) but never changes the message shown to the caller.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Cause }

// Is matches ErrAuth and any AuthError carrying the same message, so a
// re-wrapped ErrInvalidCredentials still compares equal to the preset.
func (e *AuthError) Is(target error) bool {
	if target == ErrAuth {
		return true
	}
	t, ok := target.(*AuthError)
	return ok && t.Message == e.Message
}

// WithCause returns a copy of e that unwraps to cause.
func (e *AuthError) WithCause(cause error) *AuthError {
	return &AuthError{Message: e.Message, Cause: cause}
}
