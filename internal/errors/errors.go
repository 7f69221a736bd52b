// Package errors provides sentinel and structured errors for the newcomp CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError is a user-facing error with optional location, field and hint.
//
// Rendered as:
//
//	Error: <type>: <message>
//	  Location: <location>
//	  Field: <field>
//	Hint: <hint>
type DetailError struct {
	// Type is the error category.
	Type string

	// Message describes what went wrong.
	Message string

	// Location is the file or directory involved.
	Location string

	// Field is the flag or config key involved.
	Field string

	// Hint suggests a fix.
	Hint string

	// Cause is the sentinel or underlying error.
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s: %s", e.Type, e.Message)
	if e.Location != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Location)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "\n  Field: %s", e.Field)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", e.Hint)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewConfigurationError creates a fatal generator configuration error.
func NewConfigurationError(message, field string) error {
	return &DetailError{
		Type:    "configuration error",
		Message: message,
		Field:   field,
		Cause:   ErrConfiguration,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewExistsError reports that a target path is already present.
func NewExistsError(location, hint string) error {
	return &DetailError{
		Type:     "target exists",
		Message:  fmt.Sprintf("%s already exists", location),
		Location: location,
		Hint:     hint,
		Cause:    ErrExists,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError carries a process exit code alongside the error.
type ExitError struct {
	// Code is the exit code to use.
	Code int

	// Err is the underlying error.
	Err error

	// Printed indicates the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
