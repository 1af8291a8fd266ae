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

// Linkage controls the visibility of a SIL function across translation
// units.
type Linkage uint8

// External linkage is the default for functions which carry no linkage
// keyword at all.
const External Linkage = 0

// Internal linkage marks a function private to its translation unit.
const Internal Linkage = 1

// ClangThunk linkage marks a thunk generated for calling into C code.
const ClangThunk Linkage = 2

// String returns the keyword form of this linkage.  External returns
// "external" even though the textual grammar expresses it by omission.
func (l Linkage) String() string {
	switch l {
	case External:
		return "external"
	case Internal:
		return "internal"
	case ClangThunk:
		return "clang_thunk"
	}
	//
	panic("unknown linkage")
}

// Function is a single SIL function: a name, a linkage, a lowered type and
// (for definitions, as opposed to declarations) one or more basic blocks.
type Function struct {
	name    string
	linkage Linkage
	ty      *Type
	// Blocks in order, maintained by the owning module and by MoveToEnd.
	blocks []*BasicBlock
}

// Name returns the name of this function, without its '@' sigil.
func (p *Function) Name() string {
	return p.name
}

// Linkage returns the linkage of this function.
func (p *Function) Linkage() Linkage {
	return p.linkage
}

// Type returns the lowered type of this function.
func (p *Function) Type() *Type {
	return p.ty
}

// Blocks returns the basic blocks of this function, in order.  An empty
// result means the function is a declaration without a body.
func (p *Function) Blocks() []*BasicBlock {
	return p.blocks
}

// MoveToEnd splices an existing block of this function to the end of the
// block list.  Blocks created for forward references are spliced at the
// point of their definition, so block order follows definition order.
func (p *Function) MoveToEnd(bb *BasicBlock) {
	for i, existing := range p.blocks {
		if existing == bb {
			p.blocks = append(p.blocks[:i], p.blocks[i+1:]...)
			p.blocks = append(p.blocks, bb)
			//
			return
		}
	}
	//
	panic("block not in this function")
}
