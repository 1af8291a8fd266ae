package termio

import (
	"strconv"
	"strings"
)

// Standard ANSI colour codes.
const (
	TERM_BLACK = uint(iota)
	TERM_RED
	TERM_GREEN
	TERM_YELLOW
	TERM_BLUE
	TERM_MAGENTA
	TERM_CYAN
	TERM_WHITE
)

// AnsiEscape accumulates Select Graphic Rendition codes, rendering them as a
// single ANSI escape sequence.  The zero value renders as a plain reset.
type AnsiEscape struct {
	codes []uint
}

// ResetAnsiEscape constructs an escape which clears all rendition codes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour returns this escape extended with a foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	codes := append([]uint(nil), p.codes...)
	//
	return AnsiEscape{append(codes, 30+col)}
}

// Build renders the accumulated codes as an escape sequence.
func (p AnsiEscape) Build() string {
	var builder strings.Builder
	//
	builder.WriteString("\033[")
	//
	for i, code := range p.codes {
		if i != 0 {
			builder.WriteByte(';')
		}
		//
		builder.WriteString(strconv.FormatUint(uint64(code), 10))
	}
	//
	builder.WriteByte('m')
	//
	return builder.String()
}
