// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrWeekNotFound  = errors.New("week not found")
	ErrTradeNotFound = errors.New("trade not found")
	ErrKeyNotFound   = errors.New("key not found")
	ErrCapitalNotSet = errors.New("initial capital not set")
	ErrConfigInvalid = errors.New("invalid configuration")
	ErrDatabaseError = errors.New("database error")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// PersistError signals that a mutation was applied in memory but could
// not be written to the local store. The mutation is never rolled back;
// callers should surface this as a warning, not a failure.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewPersistError creates a new PersistError.
func NewPersistError(key string, err error) *PersistError {
	return &PersistError{Key: key, Err: err}
}

// IsPersist reports whether err is a PersistError.
func IsPersist(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
