// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/simongs/swift/pkg/util/termio"
)

// Render writes a diagnostic (and any attached notes) with appropriate
// highlighting of the offending source range.  Colouring is optional, since
// output may not be directed at a terminal.
func Render(w io.Writer, d *Diagnostic, colours bool) {
	renderOne(w, d, colours)
	//
	for _, note := range d.Notes() {
		renderOne(w, note, colours)
	}
}

// RenderAll renders a sequence of diagnostics.
func RenderAll(w io.Writer, diags []*Diagnostic, colours bool) {
	for _, d := range diags {
		Render(w, d, colours)
	}
}

func renderOne(w io.Writer, d *Diagnostic, colours bool) {
	span := d.Span()
	line := d.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Always highlight at least one character, so that diagnostics reported
	// at the end of input remain visible.
	length = max(length, 1)
	// Print location, severity and message
	fmt.Fprintf(w, "%s:%d:%d: %s %s\n", d.SourceFile().Filename(),
		line.Number(), 1+lineOffset, severityPrefix(d.Severity(), colours), d.Message())
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(w, strings.Repeat("^", length))
}

// Construct the (optionally coloured) "error:" / "note:" prefix.
func severityPrefix(severity Severity, colours bool) string {
	if !colours {
		return severity.String() + ":"
	}
	//
	var escape termio.AnsiEscape
	//
	switch severity {
	case SeverityError:
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	case SeverityWarning:
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_CYAN)
	}
	//
	return escape.Build() + severity.String() + ":" + termio.ResetAnsiEscape().Build()
}
