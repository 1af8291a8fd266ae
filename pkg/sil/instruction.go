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
package sil

import "fmt"

// Opcode identifies an instruction within the closed instruction vocabulary.
type Opcode uint8

// OpTuple aggregates zero or more operands into a tuple value.
const OpTuple Opcode = 0

// OpReturn returns a single operand from the enclosing function.
const OpReturn Opcode = 1

// OpBranch transfers control unconditionally to another basic block.
const OpBranch Opcode = 2

// String returns the textual opcode keyword.
func (op Opcode) String() string {
	switch op {
	case OpTuple:
		return "tuple"
	case OpReturn:
		return "return"
	case OpBranch:
		return "br"
	}
	//
	panic("unknown opcode")
}

// Operand is a typed value reference: a lowered type together with the local
// name of the value being referenced (e.g. "$Int : %0").
type Operand struct {
	ty *Type
	// Local name without its '%' sigil.
	value string
}

// NewOperand constructs a typed value reference.
func NewOperand(ty *Type, value string) Operand {
	return Operand{ty, value}
}

// Type returns the lowered type of this operand.
func (p Operand) Type() *Type {
	return p.ty
}

// Value returns the local name referenced, without its '%' sigil.
func (p Operand) Value() string {
	return p.value
}

func (p Operand) String() string {
	return fmt.Sprintf("%s : %%%s", p.ty, p.value)
}

// Instruction binds the value produced by one opcode application to a local
// name.
type Instruction struct {
	// Local name being bound, without its '%' sigil.
	result   string
	opcode   Opcode
	operands []Operand
	// Target block for branch instructions, nil otherwise.
	target *BasicBlock
}

// NewTupleInst constructs a tuple instruction over the given operands.
func NewTupleInst(result string, operands []Operand) Instruction {
	return Instruction{result, OpTuple, operands, nil}
}

// NewReturnInst constructs a return instruction with a single operand.
func NewReturnInst(result string, operand Operand) Instruction {
	return Instruction{result, OpReturn, []Operand{operand}, nil}
}

// NewBranchInst constructs an unconditional branch to a given block.
func NewBranchInst(result string, target *BasicBlock) Instruction {
	return Instruction{result, OpBranch, nil, target}
}

// Result returns the local name this instruction binds, without its '%'
// sigil.
func (p Instruction) Result() string {
	return p.result
}

// Opcode returns the opcode of this instruction.
func (p Instruction) Opcode() Opcode {
	return p.opcode
}

// Operands returns the operands of this instruction, in order.
func (p Instruction) Operands() []Operand {
	return p.operands
}

// Target returns the block a branch instruction transfers control to, or nil
// for any other instruction.
func (p Instruction) Target() *BasicBlock {
	return p.target
}
