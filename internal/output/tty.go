package output

import (
	"os"

	"golang.org/x/term"
)

// isTerminal is swapped in tests.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return isTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals,
// which is required for prompts.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}
