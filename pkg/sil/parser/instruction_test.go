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
	"testing"

	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/util/assert"
	"github.com/simongs/swift/pkg/util/source"
)

func Test_Instruction_01(t *testing.T) {
	// Minimal well-formed function.
	p := parserOf("sil @main : $() -> () {\n" +
		"entry:\n" +
		"  %0 = tuple ()\n" +
		"  %1 = return $() : %0\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	fn := module.Function("main")
	assert.Equal(t, 1, len(fn.Blocks()))
	//
	insts := fn.Blocks()[0].Instructions()
	assert.Equal(t, 2, len(insts))
	assert.Equal(t, sil.OpTuple, insts[0].Opcode())
	assert.Equal(t, "0", insts[0].Result())
	assert.Equal(t, 0, len(insts[0].Operands()))
	assert.Equal(t, sil.OpReturn, insts[1].Opcode())
	assert.Equal(t, "1", insts[1].Result())
	assert.Equal(t, "$()", insts[1].Operands()[0].Type().String())
	assert.Equal(t, "0", insts[1].Operands()[0].Value())
}

func Test_Instruction_02(t *testing.T) {
	// Tuple with several operands (no separators between them).
	p := parserOf("sil @pair : $() -> () {\n" +
		"entry:\n" +
		"  %2 = tuple ($Int : %0 $Bool : %1)\n" +
		"  %3 = return $(Int, Bool) : %2\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	insts := module.Function("pair").Blocks()[0].Instructions()
	operands := insts[0].Operands()
	assert.Equal(t, 2, len(operands))
	assert.Equal(t, "$Int", operands[0].Type().String())
	assert.Equal(t, "0", operands[0].Value())
	assert.Equal(t, "$Bool", operands[1].Type().String())
	assert.Equal(t, "1", operands[1].Value())
}

func Test_Instruction_03(t *testing.T) {
	// Named (rather than numbered) results and operands.
	p := parserOf("sil @named : $() -> () {\n" +
		"entry:\n" +
		"  %unit = tuple ()\n" +
		"  %out = return $() : %unit\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	insts := module.Function("named").Blocks()[0].Instructions()
	assert.Equal(t, "unit", insts[0].Result())
	assert.Equal(t, "out", insts[1].Result())
	assert.Equal(t, "unit", insts[1].Operands()[0].Value())
}

func Test_Instruction_04(t *testing.T) {
	// A branch to an already-defined block resolves immediately, including
	// a block branching to itself.
	p := parserOf("sil @self : $() -> () {\n" +
		"a:\n" +
		"  %0 = br a\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	fn := module.Function("self")
	assert.Equal(t, 1, len(fn.Blocks()))
	assert.True(t, fn.Blocks()[0].Instructions()[0].Target() == fn.Blocks()[0])
}

func Test_Instruction_05(t *testing.T) {
	// A forward branch binds to the block eventually defined under that
	// name, and blocks come out in definition order (the forward-referenced
	// block is spliced to the end when its definition arrives).
	p := parserOf("sil @chain : $() -> () {\n" +
		"entry:\n" +
		"  %0 = br c\n" +
		"b:\n" +
		"  %1 = tuple ()\n" +
		"  %2 = return $() : %1\n" +
		"c:\n" +
		"  %3 = br b\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	blocks := module.Function("chain").Blocks()
	assert.Equal(t, 3, len(blocks))
	// Definition order: entry, b, c.
	assert.Equal(t, 1, len(blocks[0].Instructions()))
	assert.Equal(t, 2, len(blocks[1].Instructions()))
	assert.Equal(t, 1, len(blocks[2].Instructions()))
	// entry branches forward to c, and c back to b.
	assert.True(t, blocks[0].Instructions()[0].Target() == blocks[2])
	assert.True(t, blocks[2].Instructions()[0].Target() == blocks[1])
}

func Test_Instruction_06(t *testing.T) {
	// Redefining a block name diagnoses the redefinition, and rebinds the
	// name: later references go to the fresh block.
	p := parserOf("sil @redef : $() -> () {\n" +
		"a:\n" +
		"  %0 = tuple ()\n" +
		"a:\n" +
		"  %1 = br a\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultResolutionError, result)
	assert.Equal(t, diag.BlockRedefinition, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, "redefinition of basic block 'a'", p.engine.Diagnostics()[0].Message())
	//
	blocks := p.module.Function("redef").Blocks()
	assert.Equal(t, 2, len(blocks))
	assert.True(t, blocks[1].Instructions()[0].Target() == blocks[1])
}

func Test_Instruction_07(t *testing.T) {
	// A block referenced but never defined is diagnosed at its first
	// reference, once the body has been fully parsed.
	p := parserOf("sil @f : $() -> () {\n" +
		"entry:\n" +
		"  %0 = tuple ()\n" +
		"  %1 = br missing\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultResolutionError, result)
	//
	d := p.engine.Diagnostics()[0]
	assert.Equal(t, diag.UndefinedBlockUse, d.Kind())
	assert.Equal(t, "use of undefined basic block 'missing'", d.Message())
	assert.Equal(t, source.NewSpan(54, 61), d.Span())
}

func Test_Instruction_08(t *testing.T) {
	// Several undefined blocks are diagnosed in first-reference order.
	p := parserOf("sil @g : $() -> () {\n" +
		"entry:\n" +
		"  %0 = br x\n" +
		"  %1 = br y\n" +
		"  %2 = br x\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultResolutionError, result)
	assert.Equal(t, 2, len(p.engine.Diagnostics()))
	assert.Equal(t, "use of undefined basic block 'x'", p.engine.Diagnostics()[0].Message())
	assert.Equal(t, "use of undefined basic block 'y'", p.engine.Diagnostics()[1].Message())
}

func Test_Instruction_09(t *testing.T) {
	// A block with no instructions.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedInstructionName, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, source.NewSpan(24, 25), p.engine.Diagnostics()[0].Span())
}

func Test_Instruction_10(t *testing.T) {
	// A second instruction on the same line violates the line-start rule.
	p := parserOf("sil @h : $() -> () {\n" +
		"e:\n" +
		"  %0 = tuple () %1 = return $() : %0\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	//
	d := p.engine.Diagnostics()[0]
	assert.Equal(t, diag.InstructionNotAtLineStart, d.Kind())
	assert.Equal(t, source.NewSpan(40, 42), d.Span())
}

func Test_Instruction_11(t *testing.T) {
	// Missing '=' after the result name.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 tuple ()\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedEqualsInInstruction, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, source.NewSpan(29, 34), p.engine.Diagnostics()[0].Span())
}

func Test_Instruction_12(t *testing.T) {
	// An unknown opcode is diagnosed at the opcode itself.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 = frobnicate ()\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedOpcode, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, source.NewSpan(31, 41), p.engine.Diagnostics()[0].Span())
}

func Test_Instruction_13(t *testing.T) {
	// Tuple without its parenthesised operand list.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 = tuple %1\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	//
	d := p.engine.Diagnostics()[0]
	assert.Equal(t, diag.ExpectedTokenInInstruction, d.Kind())
	assert.Equal(t, "expected '(' in tuple instruction", d.Message())
}

func Test_Instruction_14(t *testing.T) {
	// Operand errors: missing ':' and missing value name.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 = return $() %1\n" +
		"}")
	result := p.ParseDeclaration()
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedColonInOperand, p.engine.Diagnostics()[0].Kind())
	//
	p = parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 = return $() : ()\n" +
		"}")
	result = p.ParseDeclaration()
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedValueName, p.engine.Diagnostics()[0].Kind())
}

func Test_Instruction_15(t *testing.T) {
	// br requires a block name.
	p := parserOf("sil @e : $() -> () {\n" +
		"b:\n" +
		"  %0 = br 5\n" +
		"}")
	result := p.ParseDeclaration()
	//
	assert.Equal(t, ResultSyntaxError, result)
	assert.Equal(t, diag.ExpectedBlockName, p.engine.Diagnostics()[0].Kind())
}
