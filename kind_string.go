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

import "strconv"

// Written by hand in the shape of "stringer" output. DO NOT EDIT without
// updating the corresponding const block.

func _() {
	// An "invalid array index" compiler error signals that the constant
	// values have changed. Re-generate this file.
	var x [1]struct{}
	_ = x[HeadingKind-0]
	_ = x[ParagraphKind-1]
	_ = x[ListBlockKind-2]
	_ = x[ListItemKind-3]
	_ = x[CodeBlockKind-4]
	_ = x[CalloutKind-5]
	_ = x[QuoteKind-6]
	_ = x[FigureKind-7]
	_ = x[TableKind-8]
	_ = x[TableRowKind-9]
	_ = x[TableCellKind-10]
	_ = x[FootnotesKind-11]
	_ = x[FootnoteDefKind-12]
	_ = x[MathBlockKind-13]
	_ = x[ThematicBreakKind-14]
	_ = x[HtmlBlockKind-15]
	_ = x[RawBlockKind-16]
}

const _BlockKind_name = "HeadingKindParagraphKindListBlockKindListItemKindCodeBlockKindCalloutKindQuoteKindFigureKindTableKindTableRowKindTableCellKindFootnotesKindFootnoteDefKindMathBlockKindThematicBreakKindHtmlBlockKindRawBlockKind"

var _BlockKind_index = [...]uint16{0, 11, 24, 37, 49, 62, 73, 82, 92, 101, 113, 126, 139, 154, 167, 184, 197, 209}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(_BlockKind_index)-1 {
		return "BlockKind(" + strconv.Itoa(int(k)) + ")"
	}
	return _BlockKind_name[_BlockKind_index[k]:_BlockKind_index[k+1]]
}

func (k InlineKind) String() string {
	switch k {
	case TextKind:
		return "TextKind"
	case EmphasisKind:
		return "EmphasisKind"
	case StrongKind:
		return "StrongKind"
	case StrikethroughKind:
		return "StrikethroughKind"
	case CodeSpanKind:
		return "CodeSpanKind"
	case LinkKind:
		return "LinkKind"
	case AutoLinkKind:
		return "AutoLinkKind"
	case FootnoteRefKind:
		return "FootnoteRefKind"
	case HardBreakKind:
		return "HardBreakKind"
	case SoftBreakKind:
		return "SoftBreakKind"
	default:
		return "InlineKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (p Profile) String() string {
	switch p {
	case Litedoc:
		return "litedoc"
	case Md:
		return "md"
	case MdStrict:
		return "md-strict"
	default:
		return "Profile(" + strconv.Itoa(int(p)) + ")"
	}
}

func (m Module) String() string {
	switch m {
	case Tables:
		return "tables"
	case Footnotes:
		return "footnotes"
	case Math:
		return "math"
	case Tasks:
		return "tasks"
	case Strikethrough:
		return "strikethrough"
	case Autolink:
		return "autolink"
	case Html:
		return "html"
	default:
		return "Module(" + strconv.Itoa(int(m)) + ")"
	}
}

func (k ListKind) String() string {
	switch k {
	case Unordered:
		return "unordered"
	case Ordered:
		return "ordered"
	default:
		return "ListKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case UnclosedDelimiter:
		return "UnclosedDelimiter"
	case InvalidSyntax:
		return "InvalidSyntax"
	case UnknownDirective:
		return "UnknownDirective"
	case InvalidMetadata:
		return "InvalidMetadata"
	case Other:
		return "Other"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k AttrValueKind) String() string {
	switch k {
	case AttrStr:
		return "AttrStr"
	case AttrBool:
		return "AttrBool"
	case AttrInt:
		return "AttrInt"
	case AttrFloat:
		return "AttrFloat"
	case AttrList:
		return "AttrList"
	default:
		return "AttrValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}
