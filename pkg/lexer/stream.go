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
package lexer

import (
	"github.com/simongs/swift/pkg/util/source"
	"github.com/simongs/swift/pkg/util/source/lex"
)

// Stream provides a lazy stream of significant tokens (i.e. with whitespace
// and comments already filtered) over a given source file.  The stream
// supports single-token lookahead, and can be reset to a previously marked
// position (e.g. for speculative parsing).  Finally, the stream is modal:
// certain productions (local names, the type sigil) are recognised only
// whilst the stream is in body mode.
type Stream struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	// Pending (i.e. scanned but not yet consumed) tokens.
	buffer []lex.Token
	// Indicates whether currently lexing the body of a declaration.
	body bool
}

// Mark identifies a position within a token stream to which the stream can
// subsequently be reset.
type Mark uint

// NewStream constructs a token stream over a given source file, beginning in
// (top-level) declaration mode.
func NewStream(srcfile *source.File) *Stream {
	lexer := lex.NewLexer(srcfile.Contents(), declRules...)
	//
	return &Stream{srcfile, lexer, nil, false}
}

// Lookahead returns the next significant token without consuming it.  At the
// end of the input, this returns an END_OF token (repeatedly, if asked).
func (p *Stream) Lookahead() lex.Token {
	p.fill()
	return p.buffer[0]
}

// Next consumes and returns the next significant token.
func (p *Stream) Next() lex.Token {
	p.fill()
	//
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	return next
}

// Match consumes the next token provided it has the given kind, returning
// whether or not it did so.
func (p *Stream) Match(kind uint) (lex.Token, bool) {
	if tok := p.Lookahead(); tok.Kind == kind {
		return p.Next(), true
	}
	//
	return lex.Token{}, false
}

// Text returns the source text covered by a given token.
func (p *Stream) Text(tok lex.Token) string {
	return p.srcfile.Text(tok.Span)
}

// StartsLine reports whether a given token is the first token on its line
// (leading whitespace permitted).
func (p *Stream) StartsLine(tok lex.Token) bool {
	contents := p.srcfile.Contents()
	//
	for i := tok.Span.Start() - 1; i >= 0; i-- {
		c := contents[i]
		//
		if c == '\n' {
			return true
		} else if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	// Start of file
	return true
}

// Mark identifies the current position within this stream.
func (p *Stream) Mark() Mark {
	if len(p.buffer) > 0 {
		return Mark(p.buffer[0].Span.Start())
	}
	//
	return Mark(p.lexer.Index())
}

// Reset rewinds this stream to a previously marked position.
func (p *Stream) Reset(mark Mark) {
	p.buffer = nil
	p.lexer.Seek(uint(mark))
}

// EnterBody switches this stream into body mode, under which local names and
// the type sigil are recognised.  The returned function restores the previous
// mode, and is intended to be deferred by the caller.
func (p *Stream) EnterBody() func() {
	previous := p.body
	p.setMode(true)
	//
	return func() { p.setMode(previous) }
}

// Switch lexing mode, rescanning any pending lookahead under the new rules.
func (p *Stream) setMode(body bool) {
	if p.body == body {
		return
	}
	//
	mark := p.Mark()
	p.body = body
	p.buffer = nil
	//
	if body {
		p.lexer.SetRules(bodyRules...)
	} else {
		p.lexer.SetRules(declRules...)
	}
	//
	p.lexer.Seek(uint(mark))
}

// Ensure at least one pending token, filtering whitespace and comments and
// classifying unknown characters as ILLEGAL.
func (p *Stream) fill() {
	for len(p.buffer) == 0 {
		switch {
		case p.lexer.HasNext():
			tok := p.lexer.Next()
			//
			if tok.Kind == WHITESPACE || tok.Kind == COMMENT {
				continue
			}
			//
			p.buffer = append(p.buffer, tok)
		case p.lexer.Remaining() > 0:
			// Unknown character in the current mode.
			index := int(p.lexer.Index())
			p.buffer = append(p.buffer, lex.Token{Kind: ILLEGAL, Span: source.NewSpan(index, index+1)})
			p.lexer.Seek(p.lexer.Index() + 1)
		default:
			// Exhausted (the END_OF produced by the lexer itself has already
			// been consumed).
			n := len(p.srcfile.Contents())
			p.buffer = append(p.buffer, lex.Token{Kind: END_OF, Span: source.NewSpan(n, n)})
		}
	}
}
