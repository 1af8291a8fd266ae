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

import (
	"os"
)

// ReadFiles loads each named file from disk, failing on the first which
// cannot be read.
func ReadFiles(filenames ...string) ([]File, error) {
	srcfiles := make([]File, len(filenames))
	//
	for i, filename := range filenames {
		bytes, err := os.ReadFile(filename)
		//
		if err != nil {
			return nil, err
		}
		//
		srcfiles[i] = *NewSourceFile(filename, bytes)
	}
	//
	return srcfiles, nil
}

// File is an immutable source file held in memory, against which all spans
// and diagnostics are interpreted.  Contents are held as runes, so spans are
// rune offsets rather than byte offsets.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a source file directly from its raw bytes.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name this file was loaded under.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the full contents of this file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the portion of this file covered by a given span.  Spans
// reaching beyond the end of the file are clipped rather than panicking,
// since diagnostics are frequently reported against the end of input.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	start := min(span.start, end)
	//
	return string(s.contents[start:end])
}

// FindFirstEnclosingLine determines the line on which a given span begins.
// A span beginning past the end of the file maps to the last physical line,
// and the returned line need not contain the whole span (spans may cross
// lines).
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		number = 1
		start  = 0
	)
	// Count the newlines strictly before the span, tracking where the line
	// they delimit begins.
	for i, c := range s.contents {
		if i >= span.start {
			break
		}
		//
		if c == '\n' {
			number++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, endOfLine(start, s.contents)}, number}
}

// Line identifies one physical line of a source file: its text, its span
// within the file and its (1-based) line number.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line, without its terminating newline.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the 1-based line number of this line.
func (p *Line) Number() int {
	return p.number
}

// Start returns the offset at which this line begins within its file.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters on this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Offset of the newline terminating the line beginning at start, or the end
// of the text for the final line.
func endOfLine(start int, text []rune) int {
	for i := start; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
