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

var printCmd = &cobra.Command{
	Use:   "print [flags] file1.sil file2.sil ...",
	Short: "Parse SIL source files and print them back out.",
	Long: `Parse a given set of SIL source file(s) and pretty-print the parsed
	modules.  The output of an error-free parse is itself valid SIL which
	parses back to an equivalent module.`,
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
		if !clean {
			os.Exit(4)
		}
		//
		for i, module := range modules {
			if i != 0 {
				fmt.Println()
			}
			//
			sil.Print(os.Stdout, module)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
