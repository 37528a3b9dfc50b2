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

// InlineKind discriminates the variant stored in an [Inline].
type InlineKind int

const (
	TextKind InlineKind = iota
	EmphasisKind
	StrongKind
	StrikethroughKind
	CodeSpanKind
	LinkKind
	AutoLinkKind
	FootnoteRefKind
	HardBreakKind
	SoftBreakKind
)

// Inline is a single text-level unit within a block's inline run. As with
// [Block], this is one struct tagged by Kind rather than a struct per
// variant; which fields are meaningful depends on Kind:
//
//   - TextKind: Content.
//   - EmphasisKind, StrongKind, StrikethroughKind: Children.
//   - CodeSpanKind: Content.
//   - LinkKind: Children (the label run), URL, HasTitle, Title.
//   - AutoLinkKind: URL.
//   - FootnoteRefKind: Label.
//   - HardBreakKind, SoftBreakKind: no extra data; zero-length span.
type Inline struct {
	knd  InlineKind
	span Span

	children []*Inline
	content  string

	url      string
	hasTitle bool
	title    string
	label    string
}

// Kind reports which variant i is.
func (i *Inline) Kind() InlineKind {
	if i == nil {
		return 0
	}
	return i.knd
}

// Span reports the source span i covers.
func (i *Inline) Span() Span {
	if i == nil {
		return NullSpan()
	}
	return i.span
}

// ChildCount returns the number of inline children i has.
func (i *Inline) ChildCount() int {
	if i == nil {
		return 0
	}
	return len(i.children)
}

// Child returns i's j'th inline child.
func (i *Inline) Child(j int) *Inline {
	if i == nil {
		return nil
	}
	return i.children[j]
}

// Content returns the text payload of a TextKind or CodeSpanKind inline.
func (i *Inline) Content() string {
	if i == nil {
		return ""
	}
	return i.content
}

// URL returns the destination of a LinkKind or AutoLinkKind inline.
func (i *Inline) URL() string {
	if i == nil {
		return ""
	}
	return i.url
}

// Title returns the optional title of a LinkKind inline and whether one
// was present.
func (i *Inline) Title() (string, bool) {
	if i == nil || i.knd != LinkKind {
		return "", false
	}
	return i.title, i.hasTitle
}

// Label returns the label of a FootnoteRefKind inline.
func (i *Inline) Label() string {
	if i == nil || i.knd != FootnoteRefKind {
		return ""
	}
	return i.label
}
