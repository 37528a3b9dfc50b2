// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package litedoc

// A Node is either a *[Block] or an *[Inline]. Unlike the teacher's
// pointer-tagging Node (which packs a type tag into an unsafe.Pointer to
// avoid an interface's allocation), this Node is a small struct holding
// both pointers with at most one set; that costs one extra machine word
// per Node value but needs no unsafe package, which this module has no
// other reason to import.
type Node struct {
	block  *Block
	inline *Inline
}

// BlockNode wraps a *Block as a Node.
func BlockNode(b *Block) Node {
	return Node{block: b}
}

// InlineNode wraps an *Inline as a Node.
func InlineNode(i *Inline) Node {
	return Node{inline: i}
}

// Block returns the wrapped *Block, or nil if n wraps an *Inline.
func (n Node) Block() *Block {
	return n.block
}

// Inline returns the wrapped *Inline, or nil if n wraps a *Block.
func (n Node) Inline() *Inline {
	return n.inline
}

// Span returns the span of whichever node n wraps.
func (n Node) Span() Span {
	if n.block != nil {
		return n.block.Span()
	}
	return n.inline.Span()
}

// ChildCount returns the number of children of whichever node n wraps.
func (n Node) ChildCount() int {
	if n.block != nil {
		if len(n.block.inlines) > 0 {
			return len(n.block.inlines)
		}
		return n.block.ChildCount()
	}
	return n.inline.ChildCount()
}

// Child returns the i'th child of whichever node n wraps, as a Node.
func (n Node) Child(i int) Node {
	if n.block != nil {
		if len(n.block.inlines) > 0 {
			return InlineNode(n.block.inlines[i])
		}
		return BlockNode(n.block.Child(i))
	}
	return InlineNode(n.inline.Child(i))
}
