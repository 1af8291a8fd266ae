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

import (
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/util/source"
)

// Checker validates that every name referenced by a type expression is in
// scope.  Checking normally runs only once an entire input has been parsed;
// checking a fragment mid-parse requires an explicit EarlyCheck permit, which
// the SIL parser takes out around each type annotation.
type Checker struct {
	scope  *Scope
	engine *diag.Engine
	// Locates nodes in the original text; must be the map of the parser which
	// produced the expressions being checked.
	srcmap *source.Map[Type]
	// Number of outstanding early-check permits.
	permits uint
}

// NewChecker constructs a checker resolving names against the given scope.
func NewChecker(scope *Scope, engine *diag.Engine, srcmap *source.Map[Type]) *Checker {
	return &Checker{scope, engine, srcmap, 0}
}

// Scope returns the scope this checker resolves names against.
func (p *Checker) Scope() *Scope {
	return p.scope
}

// EarlyCheck takes out a permit for checking type fragments before their
// enclosing input has been fully parsed, returning a release function.
// Releasing twice is harmless.
func (p *Checker) EarlyCheck() func() {
	p.permits++
	//
	released := false
	//
	return func() {
		if !released {
			released = true
			p.permits--
		}
	}
}

// Check validates every name referenced by the given expression, reporting a
// diagnostic for each undeclared name and returning the first as an error.
// Check panics unless an early-check permit is outstanding, since mid-parse
// checking is otherwise unsound.
func (p *Checker) Check(ty Type) error {
	if p.permits == 0 {
		panic("type checking requires an early-check permit")
	}
	//
	return p.check(ty)
}

func (p *Checker) check(ty Type) error {
	switch t := ty.(type) {
	case *Named:
		if !p.scope.IsDefined(t.Name()) {
			return p.engine.Report(p.srcmap.Get(t), diag.UndeclaredType, t.Name())
		}
		//
		return nil
	case *Tuple:
		var err error
		// Check every element, keeping the first failure.
		for _, element := range t.Elements() {
			if e := p.check(element); err == nil {
				err = e
			}
		}
		//
		return err
	case *Array:
		return p.check(t.Element())
	case *Function:
		err := p.check(t.Param())
		//
		if e := p.check(t.Result()); err == nil {
			err = e
		}
		//
		return err
	}
	//
	panic("unknown type expression")
}
