package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates the unique slug index.
	ErrConflict = errors.New("slug already in use")
	// ErrConnection is returned when the storage connection cannot be established.
	ErrConnection = errors.New("storage unavailable")
)

// ValidationError is a field-attributable rejection of input, raised while
// preparing a record and always before any write is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError returns a ValidationError naming the offending field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
