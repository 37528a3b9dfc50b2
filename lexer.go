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

import "strings"

// A Line is one line of input as produced by a [Lexer]: a borrowed
// substring excluding its trailing line terminator, plus the span of that
// same extent in the original input.
type Line struct {
	Text string
	Span Span
}

// IsBlank reports whether the line contains only spaces and tabs.
func (l Line) IsBlank() bool {
	for i := 0; i < len(l.Text); i++ {
		if l.Text[i] != ' ' && l.Text[i] != '\t' {
			return false
		}
	}
	return true
}

// Trimmed returns l.Text with leading and trailing spaces and tabs
// removed.
func (l Line) Trimmed() string {
	return strings.Trim(l.Text, " \t")
}

// HasPrefix reports whether l's trimmed text starts with prefix.
func (l Line) HasPrefix(prefix string) bool {
	return strings.HasPrefix(l.Trimmed(), prefix)
}

// Lexer presents an input buffer as a lazy, restartless sequence of
// [Line] values with one line of lookahead. Line slices borrow from the
// input; no copies are made.
type Lexer struct {
	input  string
	offset int
	peeked *Line
}

// NewLexer returns a Lexer starting at offset 0 of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Offset returns the current byte offset, i.e. the offset just past the
// last line read from the input. A peeked line counts as read: after
// PeekLine, Offset is already past that line's terminator.
func (lx *Lexer) Offset() int {
	return lx.offset
}

// IsEOF reports whether there are no more lines to read: no line is
// peeked and the offset has reached the end of the input.
func (lx *Lexer) IsEOF() bool {
	return lx.peeked == nil && lx.offset >= len(lx.input)
}

// PeekLine returns the next line without consuming it. Calling PeekLine
// repeatedly before a NextLine returns the same Line.
func (lx *Lexer) PeekLine() Line {
	if lx.peeked == nil {
		line := lx.readLine()
		lx.peeked = &line
	}
	return *lx.peeked
}

// NextLine consumes and returns the next line, advancing the offset past
// its line terminator. If a line was previously peeked, that line is
// returned without re-reading the input.
func (lx *Lexer) NextLine() Line {
	if lx.peeked != nil {
		line := *lx.peeked
		lx.peeked = nil
		return line
	}
	return lx.readLine()
}

// SkipBlankLines consumes lines while PeekLine is blank, returning the
// count consumed.
func (lx *Lexer) SkipBlankLines() int {
	n := 0
	for !lx.IsEOF() && lx.PeekLine().IsBlank() {
		lx.NextLine()
		n++
	}
	return n
}

// Slice returns the substring of the original input covered by span.
func (lx *Lexer) Slice(span Span) string {
	return span.Slice(lx.input)
}

// Remaining returns the unconsumed suffix of the input, including any
// peeked line.
func (lx *Lexer) Remaining() string {
	if lx.peeked != nil {
		return lx.input[lx.peeked.Span.Start:]
	}
	return lx.input[lx.offset:]
}

// readLine reads and consumes the next physical line from lx.input
// starting at lx.offset, without consulting or clearing lx.peeked.
//
// \n and \r\n both terminate a line; a bare \r not immediately followed
// by \n is not a terminator and is kept as part of the line text. The
// returned Span excludes both the trailing \r (if stripped) and the \n.
func (lx *Lexer) readLine() Line {
	start := lx.offset
	rest := lx.input[start:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		// No terminator: the remainder of the input is the last line.
		lx.offset = len(lx.input)
		return Line{
			Text: rest,
			Span: Span{Start: uint32(start), End: uint32(len(lx.input))},
		}
	}
	lineEnd := nl
	if lineEnd > 0 && rest[lineEnd-1] == '\r' {
		lineEnd--
	}
	lx.offset = start + nl + 1
	return Line{
		Text: rest[:lineEnd],
		Span: Span{Start: uint32(start), End: uint32(start + lineEnd)},
	}
}
