package cmd

import (
	"errors"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a bad name, option or configuration.
	ExitValidationError = 2

	// ExitTemplateSecurity indicates a custom template was rejected.
	ExitTemplateSecurity = 3

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template or file was not found.
	ExitNotFound = 5

	// ExitExists indicates the target directory already exists.
	ExitExists = 6

	// ExitAborted indicates the user interrupted a prompt.
	ExitAborted = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTemplateSecurity:
		return "Template Security Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitExists:
		return "Already Exists"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
// Template security is checked before load failures, since a rejected
// template is reported as both.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrAborted):
		return ExitAborted
	case errors.Is(err, oerrors.ErrTemplateSecurity):
		return ExitTemplateSecurity
	case errors.Is(err, oerrors.ErrValidation), errors.Is(err, oerrors.ErrConfiguration):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrExists):
		return ExitExists
	default:
		return ExitGeneralError
	}
}
