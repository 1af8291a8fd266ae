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
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/lexer"
	"github.com/simongs/swift/pkg/sil"
)

// opcodes maps instruction keywords to their opcode.  Adding an instruction
// means adding an entry here and a case to parseInstruction.
var opcodes = map[string]sil.Opcode{
	"tuple":  sil.OpTuple,
	"return": sil.OpReturn,
	"br":     sil.OpBranch,
}

// parseBasicBlock parses one basic block:
//
//	sil-basic-block ::= identifier ':' sil-instruction+
//
// Instructions are consumed for as long as a local name follows, so a block
// extends to the start of the next block, the closing brace or end of input.
func (p *functionState) parseBasicBlock() error {
	stream := p.parser.stream
	//
	name, ok := stream.Match(lexer.IDENTIFIER)
	if !ok {
		return p.parser.engine.Report(stream.Lookahead().Span, diag.ExpectedBlockName)
	}
	//
	if _, ok := stream.Match(lexer.COLON); !ok {
		return p.parser.engine.Report(stream.Lookahead().Span, diag.ExpectedBlockColon)
	}
	//
	bb := p.blockForDefinition(stream.Text(name), name.Span)
	//
	for {
		if err := p.parseInstruction(bb); err != nil {
			return err
		}
		//
		if stream.Lookahead().Kind != lexer.LOCAL_NAME {
			return nil
		}
	}
}

// parseInstruction parses one instruction into a given block:
//
//	sil-instruction ::= sil-value-ref '=' opcode ...
//
// Opcodes are recognised textually rather than by token kind, so surface
// keywords (e.g. 'return') cannot interfere with opcode recognition.
func (p *functionState) parseInstruction(bb *sil.BasicBlock) error {
	stream := p.parser.stream
	engine := p.parser.engine
	//
	tok := stream.Lookahead()
	//
	if tok.Kind != lexer.LOCAL_NAME {
		return engine.Report(tok.Span, diag.ExpectedInstructionName)
	}
	// Instructions must start a line, to assist recovery.
	if !stream.StartsLine(tok) {
		return engine.Report(tok.Span, diag.InstructionNotAtLineStart)
	}
	//
	stream.Next()
	// Strip the '%' sigil.
	result := stream.Text(tok)[1:]
	//
	if _, ok := stream.Match(lexer.EQUALS); !ok {
		return engine.Report(stream.Lookahead().Span, diag.ExpectedEqualsInInstruction)
	}
	//
	opcodeTok := stream.Lookahead()
	opcodeName := stream.Text(opcodeTok)
	//
	opcode, ok := opcodes[opcodeName]
	if !ok {
		return engine.Report(opcodeTok.Span, diag.ExpectedOpcode)
	}
	//
	stream.Next()
	//
	switch opcode {
	case sil.OpTuple:
		return p.parseTuple(bb, result, opcodeName)
	case sil.OpReturn:
		return p.parseReturn(bb, result)
	case sil.OpBranch:
		return p.parseBranch(bb, result)
	}
	//
	panic("unreachable")
}

// parseTuple parses the remainder of a tuple instruction: a parenthesised
// sequence of typed operands with no separators.
func (p *functionState) parseTuple(bb *sil.BasicBlock, result string, opcodeName string) error {
	stream := p.parser.stream
	//
	if _, ok := stream.Match(lexer.LPAREN); !ok {
		return p.parser.engine.Report(stream.Lookahead().Span,
			diag.ExpectedTokenInInstruction, "(", opcodeName)
	}
	//
	var operands []sil.Operand
	//
	for stream.Lookahead().Kind != lexer.RPAREN {
		operand, err := p.parser.parseTypedOperand()
		//
		if err != nil {
			return err
		}
		//
		operands = append(operands, operand)
	}
	//
	stream.Next()
	bb.Append(sil.NewTupleInst(result, operands))
	//
	return nil
}

// parseReturn parses the remainder of a return instruction: exactly one
// typed operand.
func (p *functionState) parseReturn(bb *sil.BasicBlock, result string) error {
	operand, err := p.parser.parseTypedOperand()
	//
	if err != nil {
		return err
	}
	//
	bb.Append(sil.NewReturnInst(result, operand))
	//
	return nil
}

// parseBranch parses the remainder of a branch instruction: the name of the
// target block, which may be a forward reference.
func (p *functionState) parseBranch(bb *sil.BasicBlock, result string) error {
	stream := p.parser.stream
	//
	name, ok := stream.Match(lexer.IDENTIFIER)
	if !ok {
		return p.parser.engine.Report(stream.Lookahead().Span, diag.ExpectedBlockName)
	}
	//
	target := p.blockForReference(stream.Text(name), name.Span)
	bb.Append(sil.NewBranchInst(result, target))
	//
	return nil
}
