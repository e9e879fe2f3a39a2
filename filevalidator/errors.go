package filevalidator

import (
	"errors"
	"fmt"
)

// ValidationErrorType represents different types of validation errors
type ValidationErrorType string

const (
	// ErrorTypeIO covers missing, unreadable and permission-denied files.
	ErrorTypeIO ValidationErrorType = "io"

	// ErrorTypeUnknown means the content matched no known signature.
	ErrorTypeUnknown ValidationErrorType = "unknown_type"
)

// ValidationError represents a file validation failure.
// It implements the error interface and includes the error type for programmatic handling.
type ValidationError struct {
	// Type categorizes the failure (io, unknown_type).
	Type ValidationErrorType

	// Message is the human-readable error description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// ErrUnknownFileType is returned when no signature matches the file content
var ErrUnknownFileType = NewValidationError(ErrorTypeUnknown, "file type is unknown")

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a ValidationError of the same type and message
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// NewValidationError creates a new ValidationError
func NewValidationError(errType ValidationErrorType, message string) *ValidationError {
	return &ValidationError{
		Type:    errType,
		Message: message,
	}
}

// newIOError wraps an OS failure, keeping its description as the message
func newIOError(err error) *ValidationError {
	return &ValidationError{
		Type:    ErrorTypeIO,
		Message: err.Error(),
		Err:     err,
	}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsErrorOfType checks if an error is a ValidationError of the specified type
func IsErrorOfType(err error, errType ValidationErrorType) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type == errType
	}
	return false
}

// GetErrorType returns the type of a ValidationError, or empty string if not a ValidationError
func GetErrorType(err error) ValidationErrorType {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type
	}
	return ""
}
