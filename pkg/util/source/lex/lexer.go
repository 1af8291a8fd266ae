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
package lex

import "github.com/simongs/swift/pkg/util/source"

// Token tags a range of the scanned input with the kind of the rule which
// matched it.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule pairs a scanner with the token kind it produces.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a lexing rule producing tokens of the given kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer tokenises an input sequence lazily, applying an ordered rule set at
// the current position (first match wins).  The rule set can be swapped and
// the position rewound whilst lexing is in progress, which supports modal
// languages and speculative parsing.  A position where no rule matches
// simply stops the lexer; it is for the caller to decide what the stall
// means.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Token scanned at the current position but not yet consumed, if any.
	pending *Token
}

// NewLexer constructs a lexer over the given input, with the given initial
// rule set.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: input, rules: rules}
}

// Index returns the current position within the input.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining returns how much of the input is left to tokenise.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext reports whether some rule matches at the current position.
func (p *Lexer[T]) HasNext() bool {
	return p.peek() != nil
}

// Next consumes and returns the token at the current position.  The end of
// the input is special-cased so that an end-of-input rule (which matches
// nothing) is produced exactly once.  Next panics when the lexer has
// stalled, so callers must guard with HasNext wherever a stall is possible.
func (p *Lexer[T]) Next() Token {
	next := *p.peek()
	p.pending = nil
	//
	if p.index == len(p.items) {
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// SetRules replaces the active rule set.  A token already scanned (but not
// yet consumed) under the old rules is discarded.
func (p *Lexer[T]) SetRules(rules ...LexRule[T]) {
	p.rules = rules
	p.pending = nil
}

// Seek rewinds (or advances) the lexer to a given position, discarding any
// scanned but unconsumed token.
func (p *Lexer[T]) Seek(index uint) {
	p.index = int(index)
	p.pending = nil
}

// Collect drains the lexer, returning every remaining token.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// Scan a token at the current position, unless one is already pending.
func (p *Lexer[T]) peek() *Token {
	if p.pending != nil || p.index > len(p.items) {
		return p.pending
	}
	//
	for _, r := range p.rules {
		n := r.scanner(p.items[p.index:])
		//
		if n == 0 {
			continue
		}
		// Clip zero-width end-of-input matches to the input.
		end := min(len(p.items), p.index+int(n))
		p.pending = &Token{r.kind, source.NewSpan(p.index, end)}
		//
		break
	}
	//
	return p.pending
}
