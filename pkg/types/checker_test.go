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
	"testing"

	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/util/assert"
	"github.com/simongs/swift/pkg/util/source"
)

func Test_Scope_01(t *testing.T) {
	universe := NewUniverseScope()
	//
	assert.True(t, universe.IsDefined("Int"))
	assert.True(t, universe.IsDefined("Bool"))
	assert.True(t, universe.IsDefined("RawPointer"))
	assert.False(t, universe.IsDefined("Foo"))
	//
	universe.Define("Foo")
	assert.True(t, universe.IsDefined("Foo"))
	//
	empty := NewEmptyScope()
	assert.False(t, empty.IsDefined("Int"))
}

func Test_Checker_01(t *testing.T) {
	checker, engine, ty := checkerOf(t, "(Int, Bool) -> [String]")
	//
	done := checker.EarlyCheck()
	defer done()
	//
	assert.Nil(t, checker.Check(ty))
	assert.False(t, engine.HasErrors())
}

func Test_Checker_02(t *testing.T) {
	checker, engine, ty := checkerOf(t, "Foo")
	//
	done := checker.EarlyCheck()
	defer done()
	//
	err := checker.Check(ty)
	assert.NotNil(t, err)
	//
	d := engine.Diagnostics()[0]
	assert.Equal(t, diag.UndeclaredType, d.Kind())
	assert.Equal(t, "use of undeclared type 'Foo'", d.Message())
	assert.Equal(t, source.NewSpan(0, 3), d.Span())
}

func Test_Checker_03(t *testing.T) {
	// Every undeclared name is reported, not just the first.
	checker, engine, ty := checkerOf(t, "(Foo, Bar)")
	//
	done := checker.EarlyCheck()
	defer done()
	//
	err := checker.Check(ty)
	assert.NotNil(t, err)
	assert.Equal(t, 2, engine.Count(diag.SeverityError))
	// The first failure is the one returned.
	assert.Equal(t, engine.Diagnostics()[0], err)
	assert.Equal(t, source.NewSpan(1, 4), engine.Diagnostics()[0].Span())
	assert.Equal(t, source.NewSpan(6, 9), engine.Diagnostics()[1].Span())
}

func Test_Checker_04(t *testing.T) {
	checker, engine, ty := checkerOf(t, "[Qux] -> Int")
	//
	done := checker.EarlyCheck()
	defer done()
	//
	assert.NotNil(t, checker.Check(ty))
	assert.Equal(t, 1, engine.Count(diag.SeverityError))
	assert.Equal(t, source.NewSpan(1, 4), engine.Diagnostics()[0].Span())
}

func Test_Checker_05(t *testing.T) {
	checker, _, ty := checkerOf(t, "Int")
	//
	defer func() {
		if recover() == nil {
			t.Error("checking without a permit should panic")
		}
	}()
	//
	checker.Check(ty)
}

func Test_Checker_06(t *testing.T) {
	checker, _, ty := checkerOf(t, "Int")
	// Permit released; releasing twice is harmless.
	done := checker.EarlyCheck()
	done()
	done()
	// A fresh permit works fine.
	done = checker.EarlyCheck()
	defer done()
	//
	assert.Nil(t, checker.Check(ty))
}

func Test_Checker_07(t *testing.T) {
	// Names added to the scope resolve.
	checker, engine, ty := checkerOf(t, "T -> T")
	checker.Scope().Define("T")
	//
	done := checker.EarlyCheck()
	defer done()
	//
	assert.Nil(t, checker.Check(ty))
	assert.False(t, engine.HasErrors())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkerOf(t *testing.T, text string) (*Checker, *diag.Engine, Type) {
	parser, engine := typeParserOf(text)
	//
	ty, err := parser.ParseType()
	if err != nil {
		t.Fatalf("unexpected parse failure: %v", err)
	}
	//
	return NewChecker(NewUniverseScope(), engine, parser.SourceMap()), engine, ty
}
