package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrInvalidID  = errors.New("invalid id")
	ErrStore      = errors.New("store error")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
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

// InvalidID returns an AppError for an identifier that doesn't parse in the
// store's id space. Distinct from NotFound: a malformed id could never have
// named a record. HTTP handlers map this to 400 Bad Request.
func InvalidID(id string) *AppError {
	return &AppError{
		Err:     ErrInvalidID,
		Message: fmt.Sprintf("malformed property id %q", id),
		Field:   "id",
	}
}

// StoreFailure wraps a storage-layer error so handlers can report backend
// unavailability (500) without leaking driver details to the client.
// The original error stays reachable through Unwrap for logging.
func StoreFailure(op string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %v", ErrStore, op, err),
		Message: fmt.Sprintf("storage failure during %s", op),
	}
}
