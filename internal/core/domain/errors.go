package domain

import "errors"

// Sentinel errors shared across services; the API layer maps each to a
// deterministic HTTP status code.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrForbidden          = errors.New("access forbidden")
)

// Token verification failures. All three render as 403 at the API boundary,
// but the distinction matters for logging and tests.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature invalid")
)
