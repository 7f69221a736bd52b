package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input: a bad component name, an
	// unknown option value, or an invalid configuration file.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates a generator was constructed from an unusable
	// configuration (for example an empty component name).
	ErrConfiguration = errors.New("configuration error")

	// ErrTemplateSecurity indicates a custom template matched the dangerous
	// content denylist.
	ErrTemplateSecurity = errors.New("template security violation")

	// ErrTemplateLoad indicates a custom template could not be loaded.
	ErrTemplateLoad = errors.New("failed to load template")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates the target component directory already exists.
	ErrExists = errors.New("already exists")

	// ErrAborted indicates the user aborted an interactive prompt.
	ErrAborted = errors.New("aborted")
)
