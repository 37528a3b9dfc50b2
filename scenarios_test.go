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

import (
	"strings"
	"testing"
)

func TestQuoteBlock(t *testing.T) {
	doc, errs := parseDoc(t, "::quote\nSome quoted text.\n::")
	if len(errs) != 0 {
		t.Fatalf("errors = %v; want none", errs)
	}
	q := doc.Blocks[0]
	if q.Kind() != QuoteKind || q.ChildCount() != 1 {
		t.Fatalf("quote = %+v; want single-paragraph QuoteKind", q)
	}
	if q.Child(0).Inlines()[0].Content() != "Some quoted text." {
		t.Errorf("quote content = %q; want %q", q.Child(0).Inlines()[0].Content(), "Some quoted text.")
	}
}

func TestFigureBlock(t *testing.T) {
	doc, errs := parseDoc(t, `::figure src="a.png" alt="An A" caption="Fig 1"`+"\n::")
	if len(errs) != 0 {
		t.Fatalf("errors = %v; want none", errs)
	}
	fig := doc.Blocks[0]
	if fig.Kind() != FigureKind {
		t.Fatalf("kind = %v; want FigureKind", fig.Kind())
	}
	if fig.Src() != "a.png" || fig.Alt() != "An A" {
		t.Errorf("Src/Alt = %q/%q; want a.png/An A", fig.Src(), fig.Alt())
	}
	caption, has := fig.Caption()
	if !has || caption != "Fig 1" {
		t.Errorf("Caption() = (%q, %v); want (Fig 1, true)", caption, has)
	}
}

func TestMathBlockDisplayFlag(t *testing.T) {
	doc, _ := parseDoc(t, "::math block\nx = y\n::")
	m := doc.Blocks[0]
	if m.Kind() != MathBlockKind || !m.Display() {
		t.Fatalf("math = %+v; want display MathBlockKind", m)
	}
	if got, want := m.Content(), "x = y\n"; got != want {
		t.Errorf("Content() = %q; want %q", got, want)
	}
}

func TestMathBlockInline(t *testing.T) {
	doc, _ := parseDoc(t, "::math\nx = y\n::")
	m := doc.Blocks[0]
	if m.Display() {
		t.Error("Display() = true; want false (no block/display attr)")
	}
}

func TestCRLFEquivalence(t *testing.T) {
	lf := "# Hello\n\nSome *text* here.\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")
	docLF, errsLF := parseDoc(t, lf)
	docCRLF, errsCRLF := parseDoc(t, crlf)
	if len(errsLF) != len(errsCRLF) {
		t.Fatalf("error counts differ: %d vs %d", len(errsLF), len(errsCRLF))
	}
	if len(docLF.Blocks) != len(docCRLF.Blocks) {
		t.Fatalf("block counts differ: %d vs %d", len(docLF.Blocks), len(docCRLF.Blocks))
	}
	for i := range docLF.Blocks {
		if docLF.Blocks[i].Kind() != docCRLF.Blocks[i].Kind() {
			t.Errorf("block %d kind differs: %v vs %v", i, docLF.Blocks[i].Kind(), docCRLF.Blocks[i].Kind())
		}
	}
}

func TestHeadingLevelInvariant(t *testing.T) {
	doc, _ := parseDoc(t, "# a\n\n## b\n\n####### too-deep")
	for _, b := range doc.Blocks {
		if b.Kind() != HeadingKind {
			continue
		}
		if b.Level() < 1 || b.Level() > 6 {
			t.Errorf("heading level = %d; want within [1,6]", b.Level())
		}
	}
	// "####### too-deep" (7 hashes) is demoted to a paragraph.
	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Kind() != ParagraphKind {
		t.Errorf("7-hash heading block kind = %v; want ParagraphKind (demoted)", last.Kind())
	}
}

func TestSiblingSpansNonDecreasing(t *testing.T) {
	doc, _ := parseDoc(t, "# a\n\nb\n\n# c")
	for i := 1; i < len(doc.Blocks); i++ {
		if doc.Blocks[i].Span().Start < doc.Blocks[i-1].Span().Start {
			t.Errorf("block %d starts before block %d: %v vs %v",
				i, i-1, doc.Blocks[i].Span(), doc.Blocks[i-1].Span())
		}
	}
}
