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
	"github.com/simongs/swift/pkg/diag"
	"github.com/simongs/swift/pkg/sil"
	"github.com/simongs/swift/pkg/util/source"
)

// pendingRef records where a block was first referenced, for diagnosing
// blocks which are never defined.
type pendingRef struct {
	name string
	span source.Span
}

// functionState is the per-function parsing state: the block name bindings
// and the set of forward references still awaiting definition.  It lives for
// exactly one declaration and is dropped afterwards, which is why parsed
// blocks carry no names.
type functionState struct {
	parser   *Parser
	function *sil.Function
	// Current binding of each block name.
	blocks map[string]*sil.BasicBlock
	// Blocks created for references but not yet defined, with the location
	// of their first reference.
	pending map[*sil.BasicBlock]pendingRef
	// Pending blocks in first-reference order, so diagnostics come out
	// deterministically.
	order []*sil.BasicBlock
	// Whether any resolution error has been reported.
	failed bool
}

func newFunctionState(parser *Parser, function *sil.Function) *functionState {
	return &functionState{
		parser:   parser,
		function: function,
		blocks:   make(map[string]*sil.BasicBlock),
		pending:  make(map[*sil.BasicBlock]pendingRef),
	}
}

// blockForDefinition returns the block for a definition of the given name.
// A forward-referenced block is spliced to the end of the function, so that
// block order follows definition order.  Redefining a name is an error; a
// fresh block is returned (so instructions never land after a terminator in
// the original block) and becomes the name's binding.
func (p *functionState) blockForDefinition(name string, span source.Span) *sil.BasicBlock {
	bb := p.blocks[name]
	// A name never seen before simply creates its block.
	if bb == nil {
		bb = p.parser.module.NewBlock(p.function)
		p.blocks[name] = bb
		//
		return bb
	}
	// A forward reference is now resolved.
	if _, ok := p.pending[bb]; ok {
		delete(p.pending, bb)
		p.function.MoveToEnd(bb)
		//
		return bb
	}
	//
	p.parser.engine.Report(span, diag.BlockRedefinition, name)
	p.failed = true
	//
	bb = p.parser.module.NewBlock(p.function)
	p.blocks[name] = bb
	//
	return bb
}

// blockForReference returns the block with the given name, creating it (and
// recording the reference for later diagnosis) if it does not yet exist.
func (p *functionState) blockForReference(name string, span source.Span) *sil.BasicBlock {
	if bb := p.blocks[name]; bb != nil {
		return bb
	}
	//
	bb := p.parser.module.NewBlock(p.function)
	p.blocks[name] = bb
	p.pending[bb] = pendingRef{name, span}
	p.order = append(p.order, bb)
	//
	return bb
}

// diagnoseProblems reports, once the body has been fully parsed, every block
// which was referenced but never defined, each at its first reference.  It
// returns whether any resolution error occurred in this function.
func (p *functionState) diagnoseProblems() bool {
	for _, bb := range p.order {
		if ref, ok := p.pending[bb]; ok {
			p.parser.engine.Report(ref.span, diag.UndefinedBlockUse, ref.name)
			p.failed = true
		}
	}
	//
	return p.failed
}
