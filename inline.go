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

// parseInlines parses text (a substring of the original input, located at
// baseOffset within it) into a sequence of inline nodes whose spans are
// in input-absolute coordinates.
func parseInlines(text string, baseOffset uint32) []*Inline {
	p := &inlineParser{text: text, base: baseOffset}
	return p.parse()
}

type inlineParser struct {
	text string
	pos  int
	base uint32

	out       []*Inline
	textStart int
}

func (p *inlineParser) parse() []*Inline {
	for p.pos < len(p.text) {
		next := p.findNextSpecial(p.pos)
		if next < 0 {
			break
		}
		p.pos = next
		if p.tryParseAt() {
			continue
		}
		// Failed targeted parse: the trigger byte becomes part of the
		// current text run.
		p.pos++
	}
	p.flushText(len(p.text))
	return p.out
}

// findNextSpecial returns the index >= from of the next trigger byte
// (one of \ ` [ * ~ <), or -1 if none remain.
func (p *inlineParser) findNextSpecial(from int) int {
	idx := strings.IndexAny(p.text[from:], "\\`[*~<")
	if idx < 0 {
		return -1
	}
	return from + idx
}

func (p *inlineParser) tryParseAt() bool {
	switch p.text[p.pos] {
	case '\\':
		return p.tryParseEscape()
	case '`':
		return p.tryParseCodeSpan()
	case '[':
		return p.tryParseBracket()
	case '*':
		return p.tryParseAsterisk()
	case '~':
		return p.tryParseTilde()
	case '<':
		return p.tryParseAutolink()
	}
	return false
}

// tryParseEscape consumes a backslash and the following byte as part of
// the current text run. If the backslash is the last byte, it is not an
// escape and parsing falls through to plain text handling.
func (p *inlineParser) tryParseEscape() bool {
	if p.pos+1 >= len(p.text) {
		return false
	}
	p.pos += 2
	return true
}

func (p *inlineParser) flushText(upto int) {
	if upto > p.textStart {
		p.out = append(p.out, p.makeText(p.textStart, upto))
	}
	p.textStart = upto
}

func (p *inlineParser) makeText(start, end int) *Inline {
	return &Inline{
		knd:     TextKind,
		span:    p.spanOf(start, end),
		content: p.text[start:end],
	}
}

func (p *inlineParser) spanOf(start, end int) Span {
	return Span{Start: p.base + uint32(start), End: p.base + uint32(end)}
}

func (p *inlineParser) tryParseCodeSpan() bool {
	start := p.pos
	closeIdx := strings.IndexByte(p.text[start+1:], '`')
	if closeIdx < 0 {
		return false
	}
	contentStart := start + 1
	contentEnd := contentStart + closeIdx
	end := contentEnd + 1
	p.flushText(start)
	p.out = append(p.out, &Inline{
		knd:     CodeSpanKind,
		span:    p.spanOf(start, end),
		content: p.text[contentStart:contentEnd],
	})
	p.pos = end
	p.textStart = end
	return true
}

func (p *inlineParser) tryParseBracket() bool {
	if p.pos+1 < len(p.text) && p.text[p.pos+1] == '[' {
		return p.tryParseLink()
	}
	if p.pos+1 < len(p.text) && p.text[p.pos+1] == '^' {
		return p.tryParseFootnoteRef()
	}
	return false
}

func (p *inlineParser) tryParseLink() bool {
	start := p.pos
	closeIdx := strings.Index(p.text[start+2:], "]]")
	if closeIdx < 0 {
		return false
	}
	contentStart := start + 2
	contentEnd := contentStart + closeIdx
	end := contentEnd + 2
	content := p.text[contentStart:contentEnd]

	var label, url string
	if bar := strings.IndexByte(content, '|'); bar >= 0 {
		label = content[:bar]
		url = content[bar+1:]
	} else {
		label = content
		url = content
	}

	p.flushText(start)
	labelStart := contentStart
	labelEnd := contentStart + len(label)
	labelNode := p.makeText(labelStart, labelEnd)
	p.out = append(p.out, &Inline{
		knd:      LinkKind,
		span:     p.spanOf(start, end),
		children: []*Inline{labelNode},
		url:      url,
	})
	p.pos = end
	p.textStart = end
	return true
}

func (p *inlineParser) tryParseFootnoteRef() bool {
	start := p.pos
	closeIdx := strings.IndexByte(p.text[start+2:], ']')
	if closeIdx < 0 {
		return false
	}
	labelStart := start + 2
	labelEnd := labelStart + closeIdx
	end := labelEnd + 1

	p.flushText(start)
	p.out = append(p.out, &Inline{
		knd:   FootnoteRefKind,
		span:  p.spanOf(start, end),
		label: p.text[labelStart:labelEnd],
	})
	p.pos = end
	p.textStart = end
	return true
}

func (p *inlineParser) tryParseAsterisk() bool {
	if p.pos+1 < len(p.text) && p.text[p.pos+1] == '*' {
		return p.tryParseDelimited(2, StrongKind)
	}
	return p.tryParseDelimited(1, EmphasisKind)
}

func (p *inlineParser) tryParseTilde() bool {
	if p.pos+1 < len(p.text) && p.text[p.pos+1] == '~' {
		return p.tryParseDelimited(2, StrikethroughKind)
	}
	return false
}

// tryParseDelimited implements the shared shape of strong/emphasis/
// strikethrough: find a closing run of delim repeated width times where
// the byte before the closer is not a space and the byte right after the
// opener is not a space. When width == 1 (single-asterisk emphasis), the
// scan skips over any "**" pair encountered so that "**" inside an
// emphasis run does not prematurely close it.
func (p *inlineParser) tryParseDelimited(width int, kind InlineKind) bool {
	start := p.pos
	contentStart := start + width
	if contentStart >= len(p.text) {
		return false
	}
	if p.text[contentStart] == ' ' {
		return false
	}
	delim := p.text[start]

	i := contentStart
	for i < len(p.text) {
		if width == 1 && delim == '*' && strings.HasPrefix(p.text[i:], "**") {
			i += 2
			continue
		}
		if hasRun(p.text, i, delim, width) {
			if p.text[i-1] == ' ' {
				i++
				continue
			}
			contentEnd := i
			end := i + width
			p.flushText(start)
			inner := parseInlines(p.text[contentStart:contentEnd], p.base+uint32(contentStart))
			p.out = append(p.out, &Inline{
				knd:      kind,
				span:     p.spanOf(start, end),
				children: inner,
			})
			p.pos = end
			p.textStart = end
			return true
		}
		i++
	}
	return false
}

func hasRun(text string, at int, b byte, width int) bool {
	if at+width > len(text) {
		return false
	}
	for k := 0; k < width; k++ {
		if text[at+k] != b {
			return false
		}
	}
	return true
}

func (p *inlineParser) tryParseAutolink() bool {
	start := p.pos
	closeIdx := strings.IndexByte(p.text[start+1:], '>')
	if closeIdx < 0 {
		return false
	}
	urlStart := start + 1
	urlEnd := urlStart + closeIdx
	url := p.text[urlStart:urlEnd]
	if strings.ContainsAny(url, " \n") {
		return false
	}
	if !strings.Contains(url, "://") && !strings.HasPrefix(url, "mailto:") {
		return false
	}
	end := urlEnd + 1
	p.flushText(start)
	p.out = append(p.out, &Inline{
		knd:  AutoLinkKind,
		span: p.spanOf(start, end),
		url:  url,
	})
	p.pos = end
	p.textStart = end
	return true
}
