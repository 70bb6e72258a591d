package cli

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled reports whether diagnostics written to out should be colored.
func colorEnabled(out *os.File) bool {
	if out == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
