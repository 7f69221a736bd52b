package templates

import (
	"fmt"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

// SecurityError reports that a template matched the dangerous content denylist.
type SecurityError struct {
	// Source identifies the offending template.
	Source string

	// Rule describes the matched denylist entry.
	Rule string

	// Match is the offending text.
	Match string
}

// Error implements the error interface.
func (e *SecurityError) Error() string {
	return fmt.Sprintf("template %s contains potentially dangerous code: %s (matched %q)", e.Source, e.Rule, e.Match)
}

// Unwrap allows errors.Is(err, errors.ErrTemplateSecurity).
func (e *SecurityError) Unwrap() error {
	return oerrors.ErrTemplateSecurity
}

// LoadError reports that a template could not be loaded.
type LoadError struct {
	// Source identifies the template.
	Source string

	// Cause is the read or validation failure.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load template %s: %v", e.Source, e.Cause)
}

// Unwrap exposes both errors.ErrTemplateLoad and the cause.
func (e *LoadError) Unwrap() []error {
	return []error{oerrors.ErrTemplateLoad, e.Cause}
}
