package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the given file is attached to a terminal, and
// hence whether ANSI escapes are appropriate on it.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal attached to the given file,
// defaulting to 80 columns when there is none (e.g. output is a pipe).
func Width(f *os.File) uint {
	w, _, err := term.GetSize(int(f.Fd()))
	//
	if err != nil || w <= 0 {
		return 80
	}
	//
	return uint(w)
}
