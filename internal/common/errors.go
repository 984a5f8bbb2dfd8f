// Package common defines shared constants and sentinel errors used across
// the snooze client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors: the API is unreachable or answered with an
	// unexpected status.
	ErrUnavailable = errors.New("service unavailable")

	// Auth errors: invalid credentials, or an action that requires a logged-in
	// user attempted without one.
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors: input rejected before or by the server.
	ErrValidation = errors.New("validation error")

	ErrNotFound = errors.New("not found")
)
