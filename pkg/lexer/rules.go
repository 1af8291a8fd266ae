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
package lexer

import (
	"github.com/simongs/swift/pkg/util/source/lex"
)

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Comments start with '//' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.String("//"), lex.Until('\n'))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// Rule for describing numbers (non-negative decimal integers only)
var number lex.Scanner[rune] = lex.And(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))

// Rule for describing local value names, such as "%0" or "%tmp".  These are
// only recognised whilst lexing the body of a declaration.
var localName lex.Scanner[rune] = lex.Sequence(lex.Unit('%'), lex.Or(identifier, number))

// declRules determines the tokens recognised at the top level of a module.
var declRules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit('{'), LBRACE),
	lex.Rule(lex.Unit('}'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('-', '>'), RIGHTARROW),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(lex.Unit('@'), AT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// bodyRules extends declRules with the productions only recognised inside the
// body of a declaration: the type sigil '$' and local value names.
var bodyRules []lex.LexRule[rune] = append([]lex.LexRule[rune]{
	lex.Rule(localName, LOCAL_NAME),
	lex.Rule(lex.Unit('$'), DOLLAR),
}, declRules...)
