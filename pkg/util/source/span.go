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

// Span identifies a region of a source file by its rune offsets, rather than
// by the text it covers.  Offsets allow a span to be related back to its
// position in the file (line numbers, enclosing lines, etc) long after
// parsing has moved on.
type Span struct {
	// Offset of the first rune covered.
	start int
	// Offset one past the last rune covered.
	end int
}

// NewSpan constructs a span covering the region [start, end).  Spans cannot
// be inverted.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the offset of the first rune covered by this span.
func (p Span) Start() int {
	return p.start
}

// End returns the offset one past the last rune covered by this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of runes covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}
