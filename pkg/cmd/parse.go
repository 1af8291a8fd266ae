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
	"fmt"
	"os"

	"github.com/simongs/swift/pkg/sil"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file1.sil file2.sil ...",
	Short: "Parse textual SIL source files.",
	Long: `Parse a given set of SIL source file(s), reporting any diagnostics.
	Each file is parsed into its own module.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		srcfiles := ReadSourceFiles(args)
		modules, clean := ParseSourceFiles(srcfiles, buildScope(cmd), useColours(cmd))
		//
		if GetFlag(cmd, "summary") {
			for i, module := range modules {
				writeSummary(srcfiles[i].Filename(), module)
			}
		}
		//
		if !clean {
			os.Exit(4)
		}
	},
}

// Report the shape of a parsed module: how many functions it holds, and how
// many blocks and instructions they contain between them.
func writeSummary(filename string, module *sil.Module) {
	var blocks, insts int
	//
	for _, fn := range module.Functions() {
		blocks += len(fn.Blocks())
		//
		for _, bb := range fn.Blocks() {
			insts += len(bb.Instructions())
		}
	}
	//
	fmt.Printf("%s: %d function(s), %d block(s), %d instruction(s)\n",
		filename, len(module.Functions()), blocks, insts)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("summary", false, "report a summary of each parsed module")
}
