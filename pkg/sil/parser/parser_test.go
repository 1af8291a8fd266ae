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
	"github.com/simongs/swift/pkg/types"
	"github.com/simongs/swift/pkg/util/assert"
	"github.com/simongs/swift/pkg/util/source"
)

func Test_Parser_01(t *testing.T) {
	// Empty input is a valid, empty module.
	p := parserOf("")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	assert.Equal(t, 0, len(module.Functions()))
}

func Test_Parser_02(t *testing.T) {
	// A declaration without a body.
	p := parserOf("sil @foo : $Int -> Int")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	fn := module.Function("foo")
	assert.NotNil(t, fn)
	assert.Equal(t, sil.External, fn.Linkage())
	assert.Equal(t, "$Int -> Int", fn.Type().String())
	assert.Equal(t, 0, len(fn.Blocks()))
}

func Test_Parser_03(t *testing.T) {
	// Each linkage form.
	p := parserOf("sil internal @a : $Int\n" +
		"sil clang_thunk @b : $Int\n" +
		"sil @c : $Int")
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	assert.Equal(t, sil.Internal, module.Function("a").Linkage())
	assert.Equal(t, sil.ClangThunk, module.Function("b").Linkage())
	assert.Equal(t, sil.External, module.Function("c").Linkage())
}

func Test_Parser_04(t *testing.T) {
	// An identifier which is not a linkage is an error.
	p := parserOf("sil public @foo : $Int")
	_, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.Equal(t, diag.ExpectedLinkage, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, source.NewSpan(4, 10), p.engine.Diagnostics()[0].Span())
}

func Test_Parser_05(t *testing.T) {
	// Missing '@', name and ':' each diagnose at the offending token.
	p := parserOf("sil : $Int")
	p.ParseModule()
	assert.Equal(t, diag.ExpectedFunctionName, p.engine.Diagnostics()[0].Kind())
	//
	p = parserOf("sil @ : $Int")
	p.ParseModule()
	assert.Equal(t, diag.ExpectedFunctionName, p.engine.Diagnostics()[0].Kind())
	//
	p = parserOf("sil @foo $Int")
	p.ParseModule()
	assert.Equal(t, diag.ExpectedType, p.engine.Diagnostics()[0].Kind())
}

func Test_Parser_06(t *testing.T) {
	// Anything other than a 'sil' declaration at the top level.
	p := parserOf("function @foo()")
	_, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.Equal(t, diag.ExpectedDeclaration, p.engine.Diagnostics()[0].Kind())
	assert.Equal(t, source.NewSpan(0, 8), p.engine.Diagnostics()[0].Span())
}

func Test_Parser_07(t *testing.T) {
	// The function is registered before its body is parsed, so it remains
	// visible even though the body fails.
	p := parserOf("sil @foo : $() -> () {\n" +
		"entry\n" +
		"}")
	module, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.NotNil(t, module.Function("foo"))
	assert.Equal(t, diag.ExpectedBlockColon, p.engine.Diagnostics()[0].Kind())
}

func Test_Parser_08(t *testing.T) {
	// A missing '}' is diagnosed, with a note at the opening brace, but does
	// not abandon the declaration.
	p := parserOf("sil @a : $() -> () {\n" +
		"entry:\n" +
		"  %0 = tuple ()\n" +
		"  %1 = return $() : %0")
	//
	result := p.ParseDeclaration()
	assert.Equal(t, ResultOK, result)
	//
	d := p.engine.Diagnostics()[0]
	assert.Equal(t, diag.ExpectedRBrace, d.Kind())
	assert.Equal(t, 1, len(d.Notes()))
	assert.Equal(t, diag.MatchingOpening, d.Notes()[0].Kind())
	assert.Equal(t, source.NewSpan(19, 20), d.Notes()[0].Span())
	// The function body survived intact.
	fn := p.module.Function("a")
	assert.Equal(t, 1, len(fn.Blocks()))
	assert.Equal(t, 2, len(fn.Blocks()[0].Instructions()))
}

func Test_Parser_09(t *testing.T) {
	// The driver carries on past resolution errors, so the second function
	// still parses; it stops at syntax errors.
	p := parserOf("sil @a : $() -> () {\n" +
		"entry:\n" +
		"  %0 = br nowhere\n" +
		"}\n" +
		"sil @b : $Int")
	module, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.Equal(t, diag.UndefinedBlockUse, p.engine.Diagnostics()[0].Kind())
	assert.NotNil(t, module.Function("b"))
}

func Test_Parser_10(t *testing.T) {
	// A syntax error stops the driver outright.
	p := parserOf("sil @a : Int\n" +
		"sil @b : $Int")
	module, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.Equal(t, 1, len(p.engine.Diagnostics()))
	assert.Nil(t, module.Function("b"))
}

func Test_Parser_11(t *testing.T) {
	// The returned error is the first error diagnostic.
	p := parserOf("sil @a : $() -> () {\n" +
		"x:\n" +
		"  %0 = br y\n" +
		"}")
	_, err := p.ParseModule()
	//
	assert.NotNil(t, err)
	assert.Equal(t, p.engine.Diagnostics()[0], err)
}

// ===================================================================
// Test Helpers
// ===================================================================

func parserOf(text string) *Parser {
	return New(source.NewSourceFile("test.sil", []byte(text)), types.NewUniverseScope())
}
