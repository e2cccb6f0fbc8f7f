package office

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("office not found")
)

// ValidationError carries per-field messages for a 422 response. Detected
// before any mutation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func validationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
