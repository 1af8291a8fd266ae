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

// Package sil defines the in-memory form of SIL: modules of functions made up
// of basic blocks holding instructions, along with the lowered types they are
// written against.
package sil

import "strings"

// Module is the arena owning every function, block and lowered type parsed
// into it.  All construction goes through the module (or through objects it
// owns), so that everything lives exactly as long as the module does.
type Module struct {
	// Functions in registration order.
	functions []*Function
	// Functions indexed by name.
	index map[string]*Function
	// Canonicalizing table for lowered types.
	converter *Converter
}

// NewModule constructs a fresh, empty module.
func NewModule() *Module {
	return &Module{nil, make(map[string]*Function), NewConverter()}
}

// Converter returns the module's type-lowering table.
func (p *Module) Converter() *Converter {
	return p.converter
}

// NewFunction constructs a function and registers it immediately, so the
// function is visible in the module even if its body subsequently fails to
// materialise.  Registering a name again shadows the earlier function for
// lookup purposes.
func (p *Module) NewFunction(name string, linkage Linkage, ty *Type) *Function {
	fn := &Function{name, linkage, ty, nil}
	//
	p.functions = append(p.functions, fn)
	p.index[name] = fn
	//
	return fn
}

// NewBlock constructs a basic block within a given function, appending it to
// the function's block list.
func (p *Module) NewBlock(fn *Function) *BasicBlock {
	bb := &BasicBlock{fn, nil}
	fn.blocks = append(fn.blocks, bb)
	//
	return bb
}

// Function looks a function up by name, returning nil if there is none.
func (p *Module) Function(name string) *Function {
	return p.index[name]
}

// Functions returns all functions in registration order.
func (p *Module) Functions() []*Function {
	return p.functions
}

// String returns the textual form of this module (see Print).
func (p *Module) String() string {
	var builder strings.Builder
	//
	Print(&builder, p)
	//
	return builder.String()
}
