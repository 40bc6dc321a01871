// Package common defines shared constants and sentinel errors used across
// the server, the sync client and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrMalformedRequest is returned when a sync request is missing required
	// structure or carries records that cannot be interpreted. It is always
	// returned before the store is touched.
	ErrMalformedRequest = errors.New("malformed request")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
