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

// Package types provides surface-syntax type expressions along with a parser
// and a name checker for them.  Type expressions are what appear after the
// sigil of a SIL type annotation; lowering them into SIL types is handled
// elsewhere.
package types

import (
	"fmt"
	"strings"
)

// Type is a surface-syntax type expression.  The vocabulary is closed: a
// type is a name, a tuple, an array or a function.
type Type interface {
	// Produce a string representation of this type, which parses back to an
	// identical expression.
	String() string
	// marker restricting implementations to this package.
	typeExpr()
}

// Named is a reference to a type by name (e.g. "Int").  Whether the name is
// actually declared is the checker's business, not the parser's.
type Named struct {
	name string
}

// NewNamed constructs a reference to a named type.
func NewNamed(name string) *Named {
	return &Named{name}
}

// Name returns the name being referenced.
func (p *Named) Name() string {
	return p.name
}

func (p *Named) String() string {
	return p.name
}

func (p *Named) typeExpr() {}

// Tuple is a parenthesised sequence of zero or more element types (e.g.
// "(Int, Bool)").  A single parenthesised type is a one-element tuple.
type Tuple struct {
	elements []Type
}

// NewTuple constructs a tuple type from the given elements.
func NewTuple(elements []Type) *Tuple {
	return &Tuple{elements}
}

// Elements returns the element types of this tuple.
func (p *Tuple) Elements() []Type {
	return p.elements
}

func (p *Tuple) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, element := range p.elements {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(element.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func (p *Tuple) typeExpr() {}

// Array is a homogeneous array type (e.g. "[Int]").
type Array struct {
	element Type
}

// NewArray constructs an array type with the given element type.
func NewArray(element Type) *Array {
	return &Array{element}
}

// Element returns the element type of this array.
func (p *Array) Element() Type {
	return p.element
}

func (p *Array) String() string {
	return fmt.Sprintf("[%s]", p.element)
}

func (p *Array) typeExpr() {}

// Function is a function type (e.g. "Int -> Bool").  The arrow is
// right-associative, so "A -> B -> C" means "A -> (B -> C)".
type Function struct {
	param  Type
	result Type
}

// NewFunction constructs a function type with the given parameter and result
// types.
func NewFunction(param Type, result Type) *Function {
	return &Function{param, result}
}

// Param returns the parameter type of this function.
func (p *Function) Param() Type {
	return p.param
}

// Result returns the result type of this function.
func (p *Function) Result() Type {
	return p.result
}

func (p *Function) String() string {
	// A function-typed parameter needs parentheses to survive the round trip.
	if _, ok := p.param.(*Function); ok {
		return fmt.Sprintf("(%s) -> %s", p.param, p.result)
	}
	//
	return fmt.Sprintf("%s -> %s", p.param, p.result)
}

func (p *Function) typeExpr() {}
