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

import (
	"fmt"
	"strings"

	"github.com/simongs/swift/pkg/types"
)

// Type is a lowered SIL type: a surface type at a given uncurry level,
// possibly in its address form.  Lowered types are canonical, so two equal
// types are always the same pointer and comparison is pointer comparison.
// Construction goes through a Converter.
type Type struct {
	surface types.Type
	uncurry uint
	address bool
}

// Surface returns the surface type this lowered type was derived from.
func (p *Type) Surface() types.Type {
	return p.surface
}

// UncurryLevel returns the uncurry level of this lowered type.
func (p *Type) UncurryLevel() uint {
	return p.uncurry
}

// IsAddress reports whether this is the address form of the type.
func (p *Type) IsAddress() bool {
	return p.address
}

// String returns the annotation syntax for this type, e.g. "$*Int" or
// "$[sil_uncurry=2]Int -> Int".
func (p *Type) String() string {
	var builder strings.Builder
	//
	builder.WriteString("$")
	//
	if p.uncurry > 0 {
		builder.WriteString(fmt.Sprintf("[sil_uncurry=%d]", p.uncurry))
	}
	//
	if p.address {
		builder.WriteString("*")
	}
	//
	builder.WriteString(p.surface.String())
	//
	return builder.String()
}

// convKey identifies a canonical lowered type.  Surface types are compared
// structurally via their (round-trippable) string form.
type convKey struct {
	surface string
	uncurry uint
	address bool
}

// Converter is the type-lowering table: it canonicalizes (surface type,
// uncurry level, address form) triples into unique Type pointers.
type Converter struct {
	cache map[convKey]*Type
}

// NewConverter constructs an empty type-lowering table.
func NewConverter() *Converter {
	return &Converter{make(map[convKey]*Type)}
}

// Lowered returns the canonical lowered form of a surface type at a given
// uncurry level.
func (p *Converter) Lowered(surface types.Type, uncurry uint) *Type {
	return p.intern(surface, uncurry, false)
}

// AddressOf returns the canonical address form of a lowered type.
func (p *Converter) AddressOf(t *Type) *Type {
	return p.intern(t.surface, t.uncurry, true)
}

func (p *Converter) intern(surface types.Type, uncurry uint, address bool) *Type {
	key := convKey{surface.String(), uncurry, address}
	//
	if existing, ok := p.cache[key]; ok {
		return existing
	}
	//
	t := &Type{surface, uncurry, address}
	p.cache[key] = t
	//
	return t
}
