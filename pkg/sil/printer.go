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
package sil

import (
	"fmt"
	"io"
)

// Print writes the textual form of a module.  Block names are not retained
// by parsing, so labels are regenerated positionally within each function
// (bb0, bb1, ...).  The output of an error-free parse parses back to an
// equivalent module.
func Print(w io.Writer, module *Module) {
	for i, fn := range module.Functions() {
		if i != 0 {
			fmt.Fprintln(w)
		}

		printFunction(w, fn)
	}
}

func printFunction(w io.Writer, fn *Function) {
	fmt.Fprint(w, "sil ")
	// External linkage is expressed by omission.
	if fn.Linkage() != External {
		fmt.Fprintf(w, "%s ", fn.Linkage())
	}
	//
	fmt.Fprintf(w, "@%s : %s", fn.Name(), fn.Type())
	// Declarations have no body.
	if len(fn.Blocks()) == 0 {
		fmt.Fprintln(w)
		return
	}
	//
	fmt.Fprintln(w, " {")
	//
	labels := blockLabels(fn)
	//
	for _, bb := range fn.Blocks() {
		fmt.Fprintf(w, "%s:\n", labels[bb])
		//
		for _, inst := range bb.Instructions() {
			printInstruction(w, inst, labels)
		}
	}
	//
	fmt.Fprintln(w, "}")
}

func blockLabels(fn *Function) map[*BasicBlock]string {
	labels := make(map[*BasicBlock]string, len(fn.Blocks()))
	//
	for i, bb := range fn.Blocks() {
		labels[bb] = fmt.Sprintf("bb%d", i)
	}
	//
	return labels
}

func printInstruction(w io.Writer, inst Instruction, labels map[*BasicBlock]string) {
	fmt.Fprintf(w, "  %%%s = %s", inst.Result(), inst.Opcode())
	//
	switch inst.Opcode() {
	case OpTuple:
		fmt.Fprint(w, " (")
		// Operands are juxtaposed without separators, as the grammar demands.
		for i, operand := range inst.Operands() {
			if i != 0 {
				fmt.Fprint(w, " ")
			}

			fmt.Fprint(w, operand)
		}
		//
		fmt.Fprint(w, ")")
	case OpReturn:
		fmt.Fprintf(w, " %s", inst.Operands()[0])
	case OpBranch:
		fmt.Fprintf(w, " %s", labels[inst.Target()])
	}
	//
	fmt.Fprintln(w)
}
