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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is injected by the build (via -ldflags), and remains empty when the
// tool is installed with "go install".
var Version string

// rootCmd is the bare "silc" invocation, which does nothing beyond reporting
// the version when asked.
var rootCmd = &cobra.Command{
	Use:   "silc",
	Short: "A parser for textual SIL.",
	Long:  "A parser (and general toolbox) for the textual form of SIL modules.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Printf("silc %s\n", version())
		}
	},
}

// Determine the version to report, which depends on how the tool was built.
func version() string {
	if Version != "" {
		// Injected by make
		return Version
	}
	// Fall back on the module version recorded by "go install".
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	// Probably "go run"
	return "(unknown version)"
}

// Execute runs the root command, and is the sole entry point used by
// main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this tool")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringArray("define", nil, "declare an additional type name")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable coloured diagnostics")
}
