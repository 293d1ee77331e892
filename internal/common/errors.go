// Package common defines shared constants and sentinel errors used across
// the LibShelf service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors (bad or duplicate input).
	ErrValidation         = errors.New("validation error")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet the minimum policy")

	// Credential check failure. Deliberately non-specific: the message must
	// not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Access to a protected operation without a usable identity.
	ErrUnauthorized = errors.New("unauthorized")
)
