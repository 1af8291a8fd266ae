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

// BasicBlock is a straight-line sequence of instructions within a function.
// Blocks carry no name: names are surface syntax, resolved away during
// parsing, and the printer regenerates positional labels.
type BasicBlock struct {
	parent *Function
	insts  []Instruction
}

// Parent returns the function this block belongs to.
func (p *BasicBlock) Parent() *Function {
	return p.parent
}

// Append adds an instruction at the end of this block.
func (p *BasicBlock) Append(inst Instruction) {
	p.insts = append(p.insts, inst)
}

// Instructions returns the instructions of this block, in order.
func (p *BasicBlock) Instructions() []Instruction {
	return p.insts
}
