// Package common defines shared constants and sentinel errors used across
// the layers of earntrack. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidDate   = errors.New("invalid date")
	ErrorInvalidAmount = errors.New("invalid amount")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenMissingSubject = errors.New("token missing subject")
)
