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

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// IDENTIFIER signals a name, keyword or opcode.  Observe that keywords (such
// as "sil") and opcodes (such as "return") are not assigned dedicated kinds;
// they are recognised textually by the parser so that names reserved by the
// surface language cannot interfere with their recognition.
const IDENTIFIER uint = 3

// NUMBER signals a non-negative decimal integer
const NUMBER uint = 4

// LPAREN signals "("
const LPAREN uint = 5

// RPAREN signals ")"
const RPAREN uint = 6

// LBRACKET signals "["
const LBRACKET uint = 7

// RBRACKET signals "]"
const RBRACKET uint = 8

// LBRACE signals "{"
const LBRACE uint = 9

// RBRACE signals "}"
const RBRACE uint = 10

// COMMA signals ","
const COMMA uint = 11

// COLON signals ":"
const COLON uint = 12

// EQUALS signals "="
const EQUALS uint = 13

// STAR signals "*"
const STAR uint = 14

// RIGHTARROW signals "->"
const RIGHTARROW uint = 15

// AT signals "@"
const AT uint = 16

// DOLLAR signals the type sigil "$" (body mode only)
const DOLLAR uint = 17

// LOCAL_NAME signals a local value name such as "%0" or "%x" (body mode only)
const LOCAL_NAME uint = 18

// ILLEGAL signals a character with no lexical meaning in the current mode
const ILLEGAL uint = 19
