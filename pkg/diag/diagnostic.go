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

	"github.com/simongs/swift/pkg/util/source"
)

// Severity classifies how serious a diagnostic is.
type Severity uint8

// SeverityError indicates something is definitely wrong with the input.
const SeverityError Severity = 0

// SeverityWarning indicates something is suspicious, but not necessarily
// wrong, with the input.
const SeverityWarning Severity = 1

// SeverityNote indicates supplementary information attached to another
// diagnostic (e.g. pointing at an opening bracket).
const SeverityNote Severity = 2

// String returns the conventional lowercase name of this severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}
	//
	panic("unknown severity")
}

// Diagnostic is a structured message reported against a given span of a
// source file.  Its kind determines both its severity and its message
// template, with any arguments applied on demand.  Supplementary notes may be
// attached.  Diagnostic implements error, such that parsing functions can use
// an already-reported diagnostic as their failure value.
type Diagnostic struct {
	srcfile *source.File
	// Span of the original text on which this diagnostic is reported.
	span source.Span
	// Kind of diagnostic being reported.
	kind Kind
	// Arguments applied to the kind's message template.
	args []any
	// Attached notes (if any).
	notes []*Diagnostic
}

// SourceFile returns the source file against which this diagnostic is
// reported.
func (p *Diagnostic) SourceFile() *source.File {
	return p.srcfile
}

// Span returns the span of the original text on which this diagnostic is
// reported.
func (p *Diagnostic) Span() source.Span {
	return p.span
}

// Kind returns the kind of this diagnostic.
func (p *Diagnostic) Kind() Kind {
	return p.kind
}

// Severity returns the severity of this diagnostic, as determined by its
// kind.
func (p *Diagnostic) Severity() Severity {
	return p.kind.Severity()
}

// Message returns the rendered message of this diagnostic.
func (p *Diagnostic) Message() string {
	return fmt.Sprintf(p.kind.Template(), p.args...)
}

// Notes returns any notes attached to this diagnostic.
func (p *Diagnostic) Notes() []*Diagnostic {
	return p.notes
}

// WithNote attaches a note to this diagnostic, returning the diagnostic
// itself for chaining.
func (p *Diagnostic) WithNote(span source.Span, kind Kind, args ...any) *Diagnostic {
	if kind.Severity() != SeverityNote {
		panic("attached diagnostic must be a note")
	}
	//
	p.notes = append(p.notes, &Diagnostic{p.srcfile, span, kind, args, nil})
	//
	return p
}

// FirstEnclosingLine determines the first line in the source file to which
// this diagnostic is associated.
func (p *Diagnostic) FirstEnclosingLine() source.Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Error implements the error interface.
func (p *Diagnostic) Error() string {
	line := p.FirstEnclosingLine()
	column := p.span.Start() - line.Start()
	//
	return fmt.Sprintf("%s:%d:%d: %s: %s", p.srcfile.Filename(), line.Number(),
		1+column, p.Severity(), p.Message())
}
