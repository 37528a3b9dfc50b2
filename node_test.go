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

import "testing"

func TestNodeBlockAndInlineAreExclusive(t *testing.T) {
	b := &Block{kind: ParagraphKind, span: Span{0, 3}}
	n := BlockNode(b)
	if n.Block() != b {
		t.Errorf("BlockNode(b).Block() = %v; want %v", n.Block(), b)
	}
	if n.Inline() != nil {
		t.Errorf("BlockNode(b).Inline() = %v; want nil", n.Inline())
	}

	i := &Inline{knd: TextKind, span: Span{0, 3}}
	n2 := InlineNode(i)
	if n2.Inline() != i {
		t.Errorf("InlineNode(i).Inline() = %v; want %v", n2.Inline(), i)
	}
	if n2.Block() != nil {
		t.Errorf("InlineNode(i).Block() = %v; want nil", n2.Block())
	}
}

func TestNodeChildDispatchesToInlinesWhenPresent(t *testing.T) {
	text := &Inline{knd: TextKind, span: Span{2, 5}, content: "abc"}
	para := &Block{kind: ParagraphKind, span: Span{0, 5}, inlines: []*Inline{text}}
	n := BlockNode(para)
	if n.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d; want 1", n.ChildCount())
	}
	child := n.Child(0)
	if child.Inline() != text {
		t.Errorf("Child(0).Inline() = %v; want %v", child.Inline(), text)
	}
}

func TestNodeChildDispatchesToBlockChildrenOtherwise(t *testing.T) {
	item := &Block{kind: ListItemKind, span: Span{2, 5}}
	list := &Block{kind: ListBlockKind, span: Span{0, 5}, children: []*Block{item}}
	n := BlockNode(list)
	if n.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d; want 1", n.ChildCount())
	}
	if n.Child(0).Block() != item {
		t.Errorf("Child(0).Block() = %v; want %v", n.Child(0).Block(), item)
	}
}

func TestNodeSpan(t *testing.T) {
	b := &Block{kind: ParagraphKind, span: Span{4, 9}}
	if got := BlockNode(b).Span(); got != (Span{4, 9}) {
		t.Errorf("Span() = %v; want {4,9}", got)
	}
}
