package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services. Callers match them
// with errors.Is and map them to transport status codes at the edge.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// FieldError reports a validation failure tied to a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// NotFound wraps ErrNotFound with a description of the missing entity.
func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

// BadRequest wraps ErrBadRequest with a reason.
func BadRequest(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrBadRequest)
}
