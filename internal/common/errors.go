// Package common defines shared constants and sentinel errors used across
// client and server layers of FormTrack. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrPersistence    = errors.New("persistence failure")

	// Service-level errors (generic/internal flow control).
	ErrInternal  = errors.New("internal error")
	ErrForbidden = errors.New("forbidden")

	// Auth errors. Missing, malformed/tampered and expired credentials are
	// distinct outcomes even when they map to the same HTTP status.
	ErrMissingCredential = errors.New("no token provided")
	ErrInvalidCredential = errors.New("invalid token")
	ErrExpiredCredential = errors.New("token expired")
	ErrInvalidLogin      = errors.New("invalid email or password")

	// Validation errors.
	ErrValidation = errors.New("validation error")

	// Capture-side errors.
	ErrModelUnavailable = errors.New("pose model unavailable")
	ErrInvalidFrameData = errors.New("invalid frame data")
	ErrFinalized        = errors.New("aggregator already finalized")
)
