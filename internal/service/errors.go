// Package service holds the transport-independent business rules: user
// registration and login, wallet ownership, and the transaction ledger.
package service

import (
	"errors" // Sentinel errors

	"github.com/Apisit250aps/transactions/internal/validation" // Field error map
)

// Sentinel errors returned by the services; the API layer maps them to
// status codes
var (
	ErrNotFound       = errors.New("not found")           // Missing resource, or a resource the caller does not own
	ErrNameTaken      = errors.New("name already exists") // Duplicate unique name at registration
	ErrBadCredentials = errors.New("invalid credentials") // Password mismatch at login
)

// ValidationError carries the per-field violation map produced by the
// validation layer
type ValidationError struct {
	Fields validation.FieldErrors // Field path to ordered violation reasons
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed"
}

// invalid wraps a violation map into a ValidationError
func invalid(fields validation.FieldErrors) error {
	return &ValidationError{Fields: fields}
}
