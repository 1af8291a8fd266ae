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

// Package parser parses the textual form of SIL into sil.Module values.
// Parsing is recursive descent over a modal token stream: within the body of
// a 'sil' declaration the stream lexes local names and type sigils which do
// not exist outside it.  All problems are reported as diagnostics; error
// returns carry the already-reported diagnostic and exist purely to unwind.
package parser

import (
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/lexer"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/types"
	"github.com/simongs/swift/pkg/util/source"
)

// Result classifies the outcome of parsing one declaration.
type Result uint8

// ResultOK means the declaration parsed and resolved cleanly.  A recovered
// problem (e.g. a missing closing brace) still yields ResultOK, since the
// driver can carry on; the diagnostic engine records the error regardless.
const ResultOK Result = 0

// ResultSyntaxError means parsing failed outright, leaving the stream at an
// arbitrary point within the declaration.
const ResultSyntaxError Result = 1

// ResultResolutionError means the declaration parsed, but resolving its
// block references failed (an undefined or redefined block).  The stream is
// positioned after the declaration, so the driver continues.
const ResultResolutionError Result = 2

// Parser parses SIL declarations off a token stream into a module.
type Parser struct {
	srcfile *source.File
	stream  *lexer.Stream
	engine  *diag.Engine
	module  *sil.Module
	// General type parser, shared across all declarations of the input.
	types *types.Parser
	// Checks surface types against the ambient scope.
	checker *types.Checker
}

// New constructs a parser for the given source file, resolving type names
// against the given scope.
func New(srcfile *source.File, scope *types.Scope) *Parser {
	stream := lexer.NewStream(srcfile)
	engine := diag.NewEngine(srcfile)
	tparser := types.NewParser(stream, engine)
	checker := types.NewChecker(scope, engine, tparser.SourceMap())
	//
	return &Parser{srcfile, stream, engine, sil.NewModule(), tparser, checker}
}

// Engine returns the diagnostic engine all problems are reported to.
func (p *Parser) Engine() *diag.Engine {
	return p.engine
}

// Module returns the module being parsed into.
func (p *Parser) Module() *sil.Module {
	return p.module
}

// ParseModule parses declarations until the end of input, stopping early on
// a syntax error (the stream is then mid-declaration, so carrying on is
// hopeless) but continuing past resolution errors to maximise diagnostics.
// The returned error is the first error diagnostic, or nil if the input was
// clean.
func (p *Parser) ParseModule() (*sil.Module, error) {
	for {
		tok := p.stream.Lookahead()
		//
		if tok.Kind == lexer.END_OF {
			break
		}
		//
		if tok.Kind == lexer.ILLEGAL {
			p.engine.Report(tok.Span, diag.UnexpectedCharacter, p.stream.Text(tok))
			break
		}
		//
		if tok.Kind != lexer.IDENTIFIER || p.stream.Text(tok) != "sil" {
			p.engine.Report(tok.Span, diag.ExpectedDeclaration)
			break
		}
		//
		if p.ParseDeclaration() == ResultSyntaxError {
			break
		}
	}
	//
	return p.module, p.firstError()
}

// ParseDeclaration parses a single 'sil' declaration:
//
//	sil-decl ::= 'sil' sil-linkage? '@' identifier ':' sil-type sil-body?
//	sil-body ::= '{' sil-basic-block+ '}'
//
// The function is registered into the module as soon as its header has been
// parsed, so it is visible even if the body subsequently fails.
func (p *Parser) ParseDeclaration() Result {
	// Switch the stream into body lexing before consuming 'sil', so that
	// every token of the declaration lexes under the body rules.
	leave := p.stream.EnterBody()
	defer leave()
	//
	tok := p.stream.Lookahead()
	//
	if tok.Kind != lexer.IDENTIFIER || p.stream.Text(tok) != "sil" {
		p.engine.Report(tok.Span, diag.ExpectedDeclaration)
		return ResultSyntaxError
	}
	//
	p.stream.Next()
	//
	linkage, err := p.parseLinkage()
	if err != nil {
		return ResultSyntaxError
	}
	//
	if _, ok := p.stream.Match(lexer.AT); !ok {
		p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedFunctionName)
		return ResultSyntaxError
	}
	//
	name, ok := p.stream.Match(lexer.IDENTIFIER)
	if !ok {
		p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedFunctionName)
		return ResultSyntaxError
	}
	//
	if _, ok := p.stream.Match(lexer.COLON); !ok {
		p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedType)
		return ResultSyntaxError
	}
	//
	fnTy, err := p.parseSILType()
	if err != nil {
		return ResultSyntaxError
	}
	//
	fn := p.module.NewFunction(p.stream.Text(name), linkage, fnTy)
	state := newFunctionState(p, fn)
	// Parse the body, if present.
	if lbrace, ok := p.stream.Match(lexer.LBRACE); ok {
		for {
			if err := state.parseBasicBlock(); err != nil {
				return ResultSyntaxError
			}
			//
			next := p.stream.Lookahead()
			//
			if next.Kind == lexer.RBRACE || next.Kind == lexer.END_OF {
				break
			}
		}
		// A missing '}' is diagnosed but deliberately not fatal, so the
		// driver can pick up with the next declaration.
		if _, ok := p.stream.Match(lexer.RBRACE); !ok {
			p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedRBrace).
				WithNote(lbrace.Span, diag.MatchingOpening, "{")
		}
	}
	//
	if state.diagnoseProblems() {
		return ResultResolutionError
	}
	//
	return ResultOK
}

// parseLinkage parses an optional linkage specifier:
//
//	sil-linkage ::= /* empty, meaning external */ | 'internal' | 'clang_thunk'
//
// A non-identifier token means the linkage was simply omitted; an identifier
// which is not a linkage is an error (it cannot be the function name, which
// carries '@').
func (p *Parser) parseLinkage() (sil.Linkage, error) {
	tok := p.stream.Lookahead()
	//
	if tok.Kind != lexer.IDENTIFIER {
		return sil.External, nil
	}
	//
	switch p.stream.Text(tok) {
	case "internal":
		p.stream.Next()
		return sil.Internal, nil
	case "clang_thunk":
		p.stream.Next()
		return sil.ClangThunk, nil
	}
	//
	return sil.External, p.engine.Report(tok.Span, diag.ExpectedLinkage)
}

// firstError returns the first error diagnostic reported, if any.
func (p *Parser) firstError() error {
	for _, d := range p.engine.Diagnostics() {
		if d.Severity() == diag.SeverityError {
			return d
		}
	}
	//
	return nil
}
