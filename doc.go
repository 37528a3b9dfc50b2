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

// Package litedoc implements a deterministic, single-pass parser for the
// LiteDoc structured text format: a Markdown-adjacent document language
// whose structure is made explicit through fenced directives rather than
// CommonMark's ambiguity-driven reflow rules.
//
// Parsing proceeds in three stages: a line-oriented [Lexer] slices the
// input at newline boundaries, a block parser ([Parser]) dispatches on
// each line's leading byte to recognize headings, fences, lists, tables,
// metadata and directives, and an inline tokenizer recognizes emphasis,
// code spans, links, autolinks, strikethrough and footnote references
// within block text. The result is an immutable [Document] tree whose
// nodes carry source [Span] information; no intermediate token stream is
// retained once a parse completes.
package litedoc
