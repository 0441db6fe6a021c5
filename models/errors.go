package models

import "fmt"

// ValidationError rejects bad user input to a store or config operation.
// The document is left unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError means the persistence medium failed. The in-memory document
// is not rolled back to match disk; the caller decides whether to retry the
// save or warn that the change is unpersisted.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotifierError means the password-change notification could not be
// delivered. It never blocks or reverses the password change itself.
type NotifierError struct {
	Err error
}

func (e *NotifierError) Error() string {
	return fmt.Sprintf("notifier: %v", e.Err)
}

func (e *NotifierError) Unwrap() error { return e.Err }
