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
package types

import (
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/lexer"
	"github.com/simongs/swift/pkg/util/source"
)

// Parser parses surface type expressions off a shared token stream, according
// to the following grammar:
//
//	type  ::= unary ( '->' type )?
//	unary ::= identifier
//	        | '(' ( type ( ',' type )* )? ')'
//	        | '[' type ']'
//
// The parser stops at the first token which cannot extend the expression,
// leaving it for the caller (e.g. a ':' separating a type from a value).
// Every node constructed is recorded in a source map, so that later checking
// can report diagnostics against the original text.
type Parser struct {
	stream *lexer.Stream
	engine *diag.Engine
	// Maps each constructed node back to the text it was parsed from.
	srcmap *source.Map[Type]
}

// NewParser constructs a type parser over a given stream, reporting to a
// given diagnostic engine.
func NewParser(stream *lexer.Stream, engine *diag.Engine) *Parser {
	return &Parser{stream, engine, source.NewSourceMap[Type]()}
}

// SourceMap returns the mapping from parsed nodes back to source spans.
func (p *Parser) SourceMap() *source.Map[Type] {
	return p.srcmap
}

// ParseType parses a single type expression.  On failure, the returned error
// is the diagnostic already reported to the engine.
func (p *Parser) ParseType() (Type, error) {
	param, err := p.parseUnaryType()
	//
	if err != nil {
		return nil, err
	}
	// Check for a function arrow.
	if _, ok := p.stream.Match(lexer.RIGHTARROW); !ok {
		return param, nil
	}
	// Right-associative, hence recurse on the result side.
	result, err := p.ParseType()
	//
	if err != nil {
		return nil, err
	}
	//
	fn := NewFunction(param, result)
	//
	paramSpan := p.srcmap.Get(param)
	resultSpan := p.srcmap.Get(result)
	p.srcmap.Put(fn, source.NewSpan(paramSpan.Start(), resultSpan.End()))
	//
	return fn, nil
}

func (p *Parser) parseUnaryType() (Type, error) {
	tok := p.stream.Lookahead()
	//
	switch tok.Kind {
	case lexer.IDENTIFIER:
		p.stream.Next()
		//
		named := NewNamed(p.stream.Text(tok))
		p.srcmap.Put(named, tok.Span)
		//
		return named, nil
	case lexer.LPAREN:
		return p.parseTupleType()
	case lexer.LBRACKET:
		return p.parseArrayType()
	case lexer.ILLEGAL:
		return nil, p.engine.Report(tok.Span, diag.UnexpectedCharacter, p.stream.Text(tok))
	default:
		return nil, p.engine.Report(tok.Span, diag.ExpectedTypeExpression)
	}
}

func (p *Parser) parseTupleType() (Type, error) {
	lparen := p.stream.Next()
	//
	var elements []Type
	// Empty tuples are permitted, hence only parse elements when the next
	// token cannot be the closing parenthesis.
	if p.stream.Lookahead().Kind != lexer.RPAREN {
		for {
			element, err := p.ParseType()
			//
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, element)
			//
			if _, ok := p.stream.Match(lexer.COMMA); !ok {
				break
			}
		}
	}
	//
	rparen, ok := p.stream.Match(lexer.RPAREN)
	//
	if !ok {
		return nil, p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedTypeRParen).
			WithNote(lparen.Span, diag.MatchingOpening, "(")
	}
	//
	tuple := NewTuple(elements)
	p.srcmap.Put(tuple, source.NewSpan(lparen.Span.Start(), rparen.Span.End()))
	//
	return tuple, nil
}

func (p *Parser) parseArrayType() (Type, error) {
	lbracket := p.stream.Next()
	//
	element, err := p.ParseType()
	//
	if err != nil {
		return nil, err
	}
	//
	rbracket, ok := p.stream.Match(lexer.RBRACKET)
	//
	if !ok {
		return nil, p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedTypeRBracket).
			WithNote(lbracket.Span, diag.MatchingOpening, "[")
	}
	//
	array := NewArray(element)
	p.srcmap.Put(array, source.NewSpan(lbracket.Span.Start(), rbracket.Span.End()))
	//
	return array, nil
}
