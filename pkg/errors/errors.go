package errors

import (
	"errors"
	"fmt"
)

// Error categories shared across services. Handlers map these onto HTTP
// statuses when no more specific sentinel applies.

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates the operation is not valid in the current state
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// NotFound creates a not found error for the named resource
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// Unauthorized creates an authentication error with context
func Unauthorized(reason string) error {
	if reason == "" {
		return ErrUnauthorized
	}
	return fmt.Errorf("%s: %w", reason, ErrUnauthorized)
}

// Conflict creates a state conflict error with context
func Conflict(reason string) error {
	if reason == "" {
		return ErrConflict
	}
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// InvalidInput creates an invalid input error for a field
func InvalidInput(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// Internal creates an internal error with context
func Internal(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}
