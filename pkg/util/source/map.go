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
package source

import "fmt"

// Map records the span of text from which each term of an abstract syntax
// tree was parsed.  Terms are keyed by identity, so distinct occurrences of
// identical syntax carry distinct spans.  Diagnostics raised against a term
// use the recorded span to point back into the original text.
type Map[T comparable] struct {
	spans map[T]Span
}

// NewSourceMap constructs an empty source map.
func NewSourceMap[T comparable]() *Map[T] {
	return &Map[T]{make(map[T]Span)}
}

// Put records the span for a newly parsed term.  Recording the same term
// twice panics, as that indicates the parser built an ill-formed tree.
func (p *Map[T]) Put(item T, span Span) {
	if p.Has(item) {
		panic(fmt.Sprintf("span already recorded for %v", any(item)))
	}
	//
	p.spans[item] = span
}

// Has reports whether a span has been recorded for the given term.
func (p *Map[T]) Has(item T) bool {
	_, ok := p.spans[item]
	//
	return ok
}

// Get returns the span recorded for the given term, panicking when there is
// none.
func (p *Map[T]) Get(item T) Span {
	span, ok := p.spans[item]
	//
	if !ok {
		panic(fmt.Sprintf("no span recorded for %v", any(item)))
	}
	//
	return span
}
