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

// Profile selects the top-level syntax mode of a [Document], chosen via
// the `@profile` directive or [Parser] configuration.
type Profile int

const (
	// Litedoc is the native LiteDoc syntax profile: fenced directives
	// and no CommonMark reflow ambiguity. This is the default.
	Litedoc Profile = iota
	// Md accepts a CommonMark-compatible subset alongside LiteDoc
	// fences. The block parser records the profile on the Document and
	// applies the same rules under every profile; bare HTML block
	// recognition depends on the Html module, not on the profile.
	Md
	// MdStrict is recorded on the Document like Md. The parser applies
	// the same rules under it, so LiteDoc fences and inline extensions
	// are still recognized.
	MdStrict
)

// Module is an opt-in capability flag declared via `@modules`. The block
// parser currently gates behavior only on Html; the others are recorded
// on the Document and otherwise inert.
type Module int

const (
	Tables Module = iota
	Footnotes
	Math
	Tasks
	Strikethrough
	Autolink
	Html
)

// parseModuleName maps a lowercase CSV token from `@modules` to a Module,
// reporting ok=false for unrecognized tokens (which are silently dropped
// by the caller, per §4.3 step 3).
func parseModuleName(name string) (Module, bool) {
	switch name {
	case "tables":
		return Tables, true
	case "footnotes":
		return Footnotes, true
	case "math":
		return Math, true
	case "tasks":
		return Tasks, true
	case "strikethrough":
		return Strikethrough, true
	case "autolink":
		return Autolink, true
	case "html":
		return Html, true
	default:
		return 0, false
	}
}

// Document is the root of a parsed LiteDoc tree.
type Document struct {
	Profile  Profile
	Modules  []Module
	Metadata *Metadata
	Blocks   []*Block
	Span     Span
}

// HasModule reports whether m was declared on the document via `@modules`.
func (d *Document) HasModule(m Module) bool {
	for _, dm := range d.Modules {
		if dm == m {
			return true
		}
	}
	return false
}

// Metadata is the parsed `--- meta ... ---` frontmatter block.
type Metadata struct {
	Entries []MetadataEntry
	Span    Span
}

// A MetadataEntry is one key/value pair from a metadata block, in
// declaration order.
type MetadataEntry struct {
	Key   string
	Value AttrValue
}

// AttrValueKind discriminates the variant stored in an [AttrValue].
type AttrValueKind int

const (
	AttrStr AttrValueKind = iota
	AttrBool
	AttrInt
	AttrFloat
	AttrList
)

// AttrValue is a tagged union of the value types metadata and directive
// attributes may hold. Only the field matching Kind is meaningful; the
// others are zero.
type AttrValue struct {
	Kind  AttrValueKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
	List  []AttrValue
}

// ListKind discriminates ordered from unordered [List] blocks.
type ListKind int

const (
	Unordered ListKind = iota
	Ordered
)

// BlockKind discriminates the variant stored in a [Block]. Unlike the
// original Rust AST this mirrors — one struct per variant — Block is a
// single struct tagged by Kind, with kind-specific data stored in
// overloaded fields documented below, following this package's teacher's
// own Block representation.
type BlockKind int

const (
	HeadingKind BlockKind = iota
	ParagraphKind
	ListBlockKind
	ListItemKind
	CodeBlockKind
	CalloutKind
	QuoteKind
	FigureKind
	TableKind
	TableRowKind
	TableCellKind
	FootnotesKind
	FootnoteDefKind
	MathBlockKind
	ThematicBreakKind
	HtmlBlockKind
	RawBlockKind
)

// Block is a single structural unit of a document. Which fields are
// meaningful depends on Kind:
//
//   - HeadingKind: Level (1..6), Inlines.
//   - ParagraphKind: Inlines.
//   - ListBlockKind: ListKind, HasStart, Start, Children (ListItemKind).
//   - ListItemKind: Children (the item's blocks; currently always a
//     single ParagraphKind block).
//   - CodeBlockKind: Lang, Content.
//   - CalloutKind: Str (the callout kind, e.g. "note"), HasTitle, Title,
//     Children.
//   - QuoteKind: Children.
//   - FigureKind: Src, Alt, HasCaption, Caption.
//   - TableKind: Children (TableRowKind).
//   - TableRowKind: Header, Children (TableCellKind).
//   - TableCellKind: Inlines.
//   - FootnotesKind: Children (FootnoteDefKind).
//   - FootnoteDefKind: Str (the label), Children.
//   - MathBlockKind: Display, Content.
//   - ThematicBreakKind: no extra data.
//   - HtmlBlockKind, RawBlockKind: Content.
type Block struct {
	kind BlockKind
	span Span

	// Structural children, meaning dependent on kind (see doc comment
	// above). Never mixed with Inlines on the same node.
	children []*Block
	inlines  []*Inline

	level   int  // HeadingKind
	listKnd ListKind
	hasNum  bool  // ListBlockKind: Start present
	num     int64 // ListBlockKind: Start; TableRow/Callout: unused
	header  bool  // TableRowKind
	display bool  // MathBlockKind

	str       string // Lang (CodeBlockKind), callout kind (CalloutKind), footnote label (FootnoteDefKind)
	content   string // CodeBlockKind, MathBlockKind, HtmlBlockKind, RawBlockKind
	src       string // FigureKind
	alt       string // FigureKind
	hasTitle  bool   // CalloutKind
	title     string // CalloutKind
	hasCapt   bool   // FigureKind
	caption   string // FigureKind
}

// Kind reports which variant b is.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Span reports the source span b covers.
func (b *Block) Span() Span {
	if b == nil {
		return NullSpan()
	}
	return b.span
}

// ChildCount returns the number of block children b has.
func (b *Block) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// Child returns b's i'th block child.
func (b *Block) Child(i int) *Block {
	if b == nil {
		return nil
	}
	return b.children[i]
}

// Inlines returns the inline content of b, for the kinds that carry
// inline runs (HeadingKind, ParagraphKind, TableCellKind). Returns nil
// for any other kind.
func (b *Block) Inlines() []*Inline {
	if b == nil {
		return nil
	}
	return b.inlines
}

// Level returns the heading level of a HeadingKind block. Returns 0 for
// any other kind.
func (b *Block) Level() int {
	if b == nil || b.kind != HeadingKind {
		return 0
	}
	return b.level
}

// ListKind returns the ordered/unordered flag of a ListBlockKind block.
func (b *Block) ListKind() ListKind {
	if b == nil {
		return Unordered
	}
	return b.listKnd
}

// Start returns the declared start number of a ListBlockKind block and
// whether one was declared.
func (b *Block) Start() (int64, bool) {
	if b == nil || b.kind != ListBlockKind {
		return 0, false
	}
	return b.num, b.hasNum
}

// Lang returns the language tag of a CodeBlockKind block.
func (b *Block) Lang() string {
	if b == nil || b.kind != CodeBlockKind {
		return ""
	}
	return b.str
}

// Content returns the raw text content of a CodeBlockKind, MathBlockKind,
// HtmlBlockKind, or RawBlockKind block.
func (b *Block) Content() string {
	if b == nil {
		return ""
	}
	return b.content
}

// CalloutKindStr returns the callout kind string (e.g. "note", "warning")
// of a CalloutKind block.
func (b *Block) CalloutKindStr() string {
	if b == nil || b.kind != CalloutKind {
		return ""
	}
	return b.str
}

// Title returns the optional title of a CalloutKind block and whether one
// was present.
func (b *Block) Title() (string, bool) {
	if b == nil || b.kind != CalloutKind {
		return "", false
	}
	return b.title, b.hasTitle
}

// Src returns the image source of a FigureKind block.
func (b *Block) Src() string {
	if b == nil || b.kind != FigureKind {
		return ""
	}
	return b.src
}

// Alt returns the alt text of a FigureKind block.
func (b *Block) Alt() string {
	if b == nil || b.kind != FigureKind {
		return ""
	}
	return b.alt
}

// Caption returns the optional caption of a FigureKind block and whether
// one was present.
func (b *Block) Caption() (string, bool) {
	if b == nil || b.kind != FigureKind {
		return "", false
	}
	return b.caption, b.hasCapt
}

// Header reports whether a TableRowKind block is a header row.
func (b *Block) Header() bool {
	if b == nil {
		return false
	}
	return b.header
}

// Label returns the footnote label of a FootnoteDefKind block.
func (b *Block) Label() string {
	if b == nil || b.kind != FootnoteDefKind {
		return ""
	}
	return b.str
}

// Display reports whether a MathBlockKind block is display (block) math
// rather than inline math.
func (b *Block) Display() bool {
	if b == nil {
		return false
	}
	return b.display
}
