package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
var (
	// ErrContactNotFound indicates the contact does not exist or belongs to
	// another user. The two cases are never distinguished.
	// API layer should map this to HTTP 404 Not Found.
	ErrContactNotFound = errors.New("Contact not found") //nolint:staticcheck // client-facing message

	// ErrUsernameTaken indicates a registration for a username already in use.
	// API layer should map this to HTTP 400 Bad Request.
	ErrUsernameTaken = errors.New("Username already registered") //nolint:staticcheck // client-facing message
)

// ServiceError wraps an unexpected failure with the service and operation
// it occurred in.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
