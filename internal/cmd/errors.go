package cmd

import (
	"fmt"
	"io"
	"os"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

// errOut receives errors the command layer prints itself.
var errOut io.Writer = os.Stderr

// exitError wraps err with the exit code derived from it.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	return &oerrors.ExitError{Code: ExitCodeFromError(err), Err: err}
}

// printError writes err to errOut.
func printError(err error) {
	_, _ = fmt.Fprintln(errOut, err)
}
