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

	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/sil/parser"
	"github.com/simongs/swift/pkg/types"
	"github.com/simongs/swift/pkg/util/source"
	"github.com/simongs/swift/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or panics if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct the type scope for this invocation: the universe, plus any names
// declared on the command line.
func buildScope(cmd *cobra.Command) *types.Scope {
	scope := types.NewUniverseScope()
	//
	for _, name := range GetStringArray(cmd, "define") {
		log.Debug(fmt.Sprintf("declaring type name %s", name))
		scope.Define(name)
	}
	//
	return scope
}

// Determine whether diagnostics should be coloured: only when directed at a
// terminal, and not suppressed outright.
func useColours(cmd *cobra.Command) bool {
	return !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stderr)
}

// ReadSourceFiles reads a given set of SIL source files, exiting with an
// error message if any cannot be read.
func ReadSourceFiles(filenames []string) []source.File {
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return srcfiles
}

// ParseSourceFiles parses each source file into its own module, rendering all
// diagnostics as they arise.  The returned flag indicates whether every file
// parsed without errors.
func ParseSourceFiles(srcfiles []source.File, scope *types.Scope, colours bool) ([]*sil.Module, bool) {
	var (
		modules = make([]*sil.Module, len(srcfiles))
		clean   = true
	)
	//
	for i := range srcfiles {
		p := parser.New(&srcfiles[i], scope)
		module, _ := p.ParseModule()
		//
		diag.RenderAll(os.Stderr, p.Engine().Diagnostics(), colours)
		//
		if p.Engine().HasErrors() {
			clean = false
		}
		//
		modules[i] = module
	}
	//
	return modules, clean
}
