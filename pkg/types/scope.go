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
package types

// universeTypes are the type names every scope starts from: the builtin
// vocabulary of the surface language.
var universeTypes = []string{
	"Int", "Int8", "Int16", "Int32", "Int64",
	"UInt", "UInt8", "UInt16", "UInt32", "UInt64",
	"Bool", "Float", "Float32", "Float64", "Double",
	"String", "Char", "Never", "RawPointer",
}

// Scope is the set of type names in scope, against which the checker
// resolves named references.
type Scope struct {
	names map[string]bool
}

// NewEmptyScope constructs a scope with no names at all.
func NewEmptyScope() *Scope {
	return &Scope{make(map[string]bool)}
}

// NewUniverseScope constructs a scope holding the builtin type names.
func NewUniverseScope() *Scope {
	scope := NewEmptyScope()
	//
	for _, name := range universeTypes {
		scope.Define(name)
	}
	//
	return scope
}

// Define brings a type name into scope.  Defining a name twice is harmless.
func (p *Scope) Define(name string) {
	p.names[name] = true
}

// IsDefined reports whether a given type name is in scope.
func (p *Scope) IsDefined(name string) bool {
	return p.names[name]
}
