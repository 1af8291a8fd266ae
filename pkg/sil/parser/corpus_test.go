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
	"os"
	"strings"
	"testing"

	"github.com/simongs/swift/pkg/types"
	"github.com/simongs/swift/pkg/util/assert"
	"github.com/simongs/swift/pkg/util/source"
	"gopkg.in/yaml.v3"
)

// CorpusTest describes one end-to-end parsing scenario loaded from a YAML
// corpus file.  A case with no expected diagnostics must parse cleanly and
// pretty-print to exactly the expected output; otherwise the diagnostics
// (rendered one per line, as "file:line:col: severity: message") must match
// exactly, in reporting order.
type CorpusTest struct {
	Name string `yaml:"name"`
	// Textual SIL to parse.
	Input string `yaml:"input"`
	// Additional type names declared in scope before parsing.
	Define []string `yaml:"define,omitempty"`
	// Expected pretty-printed form of the parsed module.
	Output string `yaml:"output,omitempty"`
	// Expected diagnostics, in reporting order.
	Diagnostics []string `yaml:"diagnostics,omitempty"`
	// Reason for skipping this case (if any).
	Skip string `yaml:"skip,omitempty"`
}

// CorpusFile is the top-level structure of a YAML corpus file.
type CorpusFile struct {
	Tests []CorpusTest `yaml:"tests"`
}

func Test_Corpus_01(t *testing.T) {
	runCorpusFile(t, "../../../testdata/parse.yaml")
}

func Test_Corpus_02(t *testing.T) {
	runCorpusFile(t, "../../../testdata/errors.yaml")
}

func Test_Corpus_03(t *testing.T) {
	// Printing is a fixpoint: a printed module parses back to a module which
	// prints identically.
	srcfiles, err := source.ReadFiles("../../../testdata/example.sil")
	if err != nil {
		t.Fatalf("failed reading example: %v", err)
	}
	//
	p := New(&srcfiles[0], types.NewUniverseScope())
	module, err := p.ParseModule()
	//
	assert.Nil(t, err)
	//
	printed := module.String()
	q := New(source.NewSourceFile("printed.sil", []byte(printed)), types.NewUniverseScope())
	reparsed, err := q.ParseModule()
	//
	assert.Nil(t, err)
	assert.Equal(t, printed, reparsed.String())
}

// ===================================================================
// Test Helpers
// ===================================================================

func runCorpusFile(t *testing.T, filename string) {
	var corpus CorpusFile
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed reading corpus %s: %v", filename, err)
	}
	//
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		t.Fatalf("failed parsing corpus %s: %v", filename, err)
	}
	//
	for _, tc := range corpus.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Skip != "" {
				t.Skip(tc.Skip)
			}
			//
			scope := types.NewUniverseScope()
			//
			for _, name := range tc.Define {
				scope.Define(name)
			}
			//
			p := New(source.NewSourceFile("test.sil", []byte(tc.Input)), scope)
			module, err := p.ParseModule()
			//
			var actual []string
			//
			for _, d := range p.Engine().Diagnostics() {
				actual = append(actual, d.Error())
			}
			//
			if len(tc.Diagnostics) == 0 {
				if err != nil {
					t.Fatalf("unexpected diagnostics:\n%s", strings.Join(actual, "\n"))
				}
				//
				assert.Equal(t, tc.Output, module.String())
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tc.Diagnostics, actual)
			}
		})
	}
}
