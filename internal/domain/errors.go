// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request or entity fails validation.
	// ValidationError unwraps to it, so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUsername is returned when a user has no username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPasswordHash is returned when a user is built without a hash.
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

	// ErrEmptyOwner is returned when a contact has no owning user.
	ErrEmptyOwner = errors.New("contact owner cannot be empty")

	// ErrEmptyFirstName is returned when a contact has a blank first name.
	ErrEmptyFirstName = errors.New("contact first name cannot be empty")
)

// FieldViolation describes a single failed field constraint.
type FieldViolation struct {
	Field   string
	Message string
}

// String renders the violation as "field: message".
func (v FieldViolation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return v.Field + ": " + v.Message
}

// ValidationError aggregates every violated constraint of one request.
// Its message lists all violations, not only the first.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}

// Unwrap returns ErrValidation to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
