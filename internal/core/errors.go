package core

import (
	"errors"
	"fmt"
)

// Error classes. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrNoOp       = errors.New("no changes to apply")
	ErrStale      = errors.New("stale write")
	ErrIntegrity  = errors.New("integrity violation")
	ErrUpstream   = errors.New("upstream failure")
)

// AppError carries an error class, a human-readable message and, optionally,
// the field that caused it and the underlying cause.
type AppError struct {
	Err     error  // error class
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
	Cause   error  // Optional: underlying error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func NoOp(field string) *AppError {
	return &AppError{
		Err:     ErrNoOp,
		Message: fmt.Sprintf("no changes to apply on %s", field),
		Field:   field,
	}
}

func Stale(resource, id string, cause error) *AppError {
	return &AppError{
		Err:     ErrStale,
		Message: fmt.Sprintf("%s %s was modified concurrently", resource, id),
		Cause:   cause,
	}
}

func Integrity(message string) *AppError {
	return &AppError{
		Err:     ErrIntegrity,
		Message: message,
	}
}

func Upstream(message string, cause error) *AppError {
	return &AppError{
		Err:     ErrUpstream,
		Message: message,
		Cause:   cause,
	}
}

func isNoOp(err error) bool {
	return err != nil && errors.Is(err, ErrNoOp)
}
