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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/sil/parser"
	"github.com/simongs/swift/pkg/util/source"
	"github.com/simongs/swift/pkg/util/termio"
	"github.com/spf13/cobra"
)

// historyFile is where the repl keeps its input history, relative to the
// user's home directory.
const historyFile = ".silc_history"

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Parse SIL declarations interactively.",
	Long: `Read SIL declarations from an interactive prompt.  Input accumulates
	until a blank line, at which point the chunk is parsed and either its
	diagnostics or its pretty-printed form are shown.  Type :quit (or press
	Ctrl-D) to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) {
	scope := buildScope(cmd)
	colours := !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
	//
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	//
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	//
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	//
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	//
	for {
		chunk, ok := readChunk(ln)
		//
		if !ok {
			fmt.Println()
			return
		}
		//
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		//
		if strings.TrimSpace(chunk) == ":quit" {
			return
		}
		//
		ln.AppendHistory(strings.ReplaceAll(chunk, "\n", " "))
		//
		p := parser.New(source.NewSourceFile("<repl>", []byte(chunk)), scope)
		module, _ := p.ParseModule()
		//
		if p.Engine().HasErrors() {
			diag.RenderAll(os.Stdout, p.Engine().Diagnostics(), colours)
		} else {
			sil.Print(os.Stdout, module)
		}
		//
		fmt.Println(strings.Repeat("-", int(termio.Width(os.Stdout))))
	}
}

// readChunk accumulates input lines until a blank line completes the chunk.
// The flag is false once the input is exhausted; an aborted prompt (Ctrl-C)
// discards the chunk but keeps the session alive.
func readChunk(ln *liner.State) (string, bool) {
	var builder strings.Builder
	//
	for {
		var (
			line string
			err  error
		)
		//
		if builder.Len() == 0 {
			line, err = ln.Prompt("sil> ")
		} else {
			line, err = ln.Prompt(".... ")
		}
		//
		if errors.Is(err, io.EOF) {
			return "", false
		} else if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		} else if err != nil {
			return "", false
		}
		// A blank line completes the pending chunk (and is otherwise
		// ignored).
		if strings.TrimSpace(line) == "" {
			if builder.Len() > 0 {
				return builder.String(), true
			}
			//
			continue
		}
		//
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
