package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// It is the absent marker of the store interfaces, not a failure.
	ErrNotFound = errors.New("entity not found")

	// ErrCaseNotFound indicates that the requested case does not exist in the store.
	ErrCaseNotFound = fmt.Errorf("%w: case", ErrNotFound)

	// ErrSessionNotFound indicates that no session exists for the given key.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrInvalidEntity is returned when an entity cannot be stored because the
	// backend rejected its shape (for example a constraint violation).
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError wraps a backend failure (network, database, encoding) with the
// entity and operation it happened in. Every adapter returns backend failures
// as a *StoreError so callers can tell them apart from the absent marker.
type StoreError struct {
	Entity    string // The entity type (e.g., "case")
	Operation string // The operation that failed (e.g., "find_by_id", "save")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsStoreError reports whether err is, or wraps, a *StoreError.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
