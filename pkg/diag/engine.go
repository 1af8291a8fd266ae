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
	"github.com/simongs/swift/pkg/util/source"
)

// Engine is the sink through which all diagnostics for a given source file
// are reported.  Reporting never interrupts control flow: the engine simply
// records diagnostics in the order they arise, and callers signal failure
// through their own return values (typically by returning the reported
// diagnostic as an error).
type Engine struct {
	srcfile *source.File
	// All diagnostics reported so far, in reporting order.
	diags []*Diagnostic
}

// NewEngine constructs an empty diagnostic engine for a given source file.
func NewEngine(srcfile *source.File) *Engine {
	return &Engine{srcfile, nil}
}

// SourceFile returns the source file this engine reports against.
func (p *Engine) SourceFile() *source.File {
	return p.srcfile
}

// Report records a diagnostic of the given kind against a given span,
// returning it for use as an error value.
func (p *Engine) Report(span source.Span, kind Kind, args ...any) *Diagnostic {
	d := &Diagnostic{p.srcfile, span, kind, args, nil}
	p.diags = append(p.diags, d)
	//
	return d
}

// Diagnostics returns all diagnostics reported so far, in reporting order.
func (p *Engine) Diagnostics() []*Diagnostic {
	return p.diags
}

// Count returns the number of diagnostics of a given severity reported so
// far.
func (p *Engine) Count(severity Severity) uint {
	count := uint(0)
	//
	for _, d := range p.diags {
		if d.Severity() == severity {
			count++
		}
	}
	//
	return count
}

// HasErrors reports whether any error diagnostics have been reported.
func (p *Engine) HasErrors() bool {
	return p.Count(SeverityError) > 0
}
