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
package parser

import (
	"strconv"
	"strings"

	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/lexer"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/util/source"
)

// parseSILType parses a SIL type annotation:
//
//	sil-type       ::= '$' sil-attributes? '*'? type
//	sil-attributes ::= '[' sil-attribute (',' sil-attribute)* ']'
//	sil-attribute  ::= 'sil_sret' | 'sil_uncurry' '=' integer
//
// The surface type is name-checked on the spot (under an early-check permit)
// and lowered through the module's converter.  The sil_sret attribute is
// accepted and discarded.
func (p *Parser) parseSILType() (*sil.Type, error) {
	if _, ok := p.stream.Match(lexer.DOLLAR); !ok {
		return nil, p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedType)
	}
	//
	sret := false
	uncurry := uint(0)
	// A '[' here is ambiguous: it may open an attribute list or an array
	// type.  Consume it speculatively; only an identifier starting "sil_"
	// commits to the attribute list.
	if p.stream.Lookahead().Kind == lexer.LBRACKET {
		mark := p.stream.Mark()
		lbracket := p.stream.Next()
		next := p.stream.Lookahead()
		//
		if next.Kind == lexer.IDENTIFIER && strings.HasPrefix(p.stream.Text(next), "sil_") {
			if err := p.parseSILTypeAttributes(lbracket.Span, &sret, &uncurry); err != nil {
				return nil, err
			}
		} else {
			p.stream.Reset(mark)
		}
	}
	// A '*' marks the address form of the type.
	address := false
	//
	if _, ok := p.stream.Match(lexer.STAR); ok {
		address = true
	}
	//
	surface, err := p.types.ParseType()
	if err != nil {
		return nil, err
	}
	// Name binding normally runs after parsing; checking this fragment now
	// requires taking out a permit.
	done := p.checker.EarlyCheck()
	defer done()
	//
	if err := p.checker.Check(surface); err != nil {
		return nil, err
	}
	//
	t := p.module.Converter().Lowered(surface, uncurry)
	//
	if address {
		t = p.module.Converter().AddressOf(t)
	}
	//
	return t, nil
}

// parseSILTypeAttributes parses the remainder of an attribute list whose '['
// has already been consumed.  Each iteration likewise begins just past the
// '[' or ',' which introduced the attribute.
func (p *Parser) parseSILTypeAttributes(lbracket source.Span, sret *bool, uncurry *uint) error {
	for {
		attr, ok := p.stream.Match(lexer.IDENTIFIER)
		//
		if !ok {
			return p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedAttributeName)
		}
		//
		switch p.stream.Text(attr) {
		case "sil_sret":
			*sret = true
		case "sil_uncurry":
			if _, ok := p.stream.Match(lexer.EQUALS); !ok {
				return p.engine.Report(p.stream.Lookahead().Span, diag.MalformedUncurryAttribute)
			}
			//
			num, ok := p.stream.Match(lexer.NUMBER)
			//
			if !ok {
				return p.engine.Report(p.stream.Lookahead().Span, diag.MalformedUncurryAttribute)
			}
			// The level must fit 32 bits, like the unsigned it came from.
			level, err := strconv.ParseUint(p.stream.Text(num), 10, 32)
			//
			if err != nil {
				return p.engine.Report(num.Span, diag.MalformedUncurryAttribute)
			}
			//
			*uncurry = uint(level)
		default:
			return p.engine.Report(attr.Span, diag.UnknownAttribute)
		}
		//
		if _, ok := p.stream.Match(lexer.COMMA); !ok {
			break
		}
	}
	//
	if _, ok := p.stream.Match(lexer.RBRACKET); !ok {
		return p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedAttributeBracket).
			WithNote(lbracket, diag.MatchingOpening, "[")
	}
	//
	return nil
}

// parseTypedOperand parses a typed value reference:
//
//	sil-typed-valueref ::= sil-type ':' sil-value-ref
func (p *Parser) parseTypedOperand() (sil.Operand, error) {
	ty, err := p.parseSILType()
	//
	if err != nil {
		return sil.Operand{}, err
	}
	//
	if _, ok := p.stream.Match(lexer.COLON); !ok {
		return sil.Operand{}, p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedColonInOperand)
	}
	//
	value, ok := p.stream.Match(lexer.LOCAL_NAME)
	//
	if !ok {
		return sil.Operand{}, p.engine.Report(p.stream.Lookahead().Span, diag.ExpectedValueName)
	}
	// Strip the '%' sigil.
	return sil.NewOperand(ty, p.stream.Text(value)[1:]), nil
}
