// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return Files(os.Stdin, os.Stdout)
}

// Files reports whether every given file is attached to a terminal.
// A nil file never is.
func Files(files ...*os.File) bool {
	if len(files) == 0 {
		return false
	}
	for _, f := range files {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			return false
		}
	}
	return true
}
