// Package common defines shared constants and sentinel errors used across
// client and server layers of StudyTrack. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound also covers rows that exist
	// under a different owner: the two cases must stay indistinguishable.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration errors.
	ErrorMissingField  = errors.New("missing required fields")
	ErrorWeakPassword  = errors.New("password must be at least 8 characters long and contain at least one number")
	ErrorAlreadyExists = errors.New("user already exists")

	// Login errors. Unknown email and wrong password both map here.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Validation of request payloads (bad enum value, malformed body).
	ErrorValidation = errors.New("validation error")

	// Auth errors. Clients see the same Unauthorized outcome for both;
	// the split exists so the server can log expiry separately.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Server-side misconfiguration (e.g. no signing secret). Must surface
	// as a 5xx, never as a credential error.
	ErrorConfiguration = errors.New("server configuration error")
)
