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
	"strconv"
	"strings"
)

// blockParser drives a Lexer to produce a Document. It is constructed
// fresh for each call to Parser.ParseWithRecovery and holds the per-parse
// state (lexer position, profile, declared modules); errors are recorded
// into the facade's ErrorCollector.
type blockParser struct {
	lx       *Lexer
	input    string
	profile  Profile
	modules  []Module
	errs     *ErrorCollector
	recover  bool
}

func newBlockParser(input string, profile Profile, errs *ErrorCollector, recover bool) *blockParser {
	return &blockParser{
		lx:      NewLexer(input),
		input:   input,
		profile: profile,
		errs:    errs,
		recover: recover,
	}
}

func (bp *blockParser) recordError(err *ParseError) {
	bp.errs.Push(err)
}

func (bp *blockParser) hasModule(m Module) bool {
	for _, dm := range bp.modules {
		if dm == m {
			return true
		}
	}
	return false
}

// parseDocument runs the full top-level sequence: directives, metadata,
// then blocks until EOF.
func (bp *blockParser) parseDocument() *Document {
	doc := &Document{Profile: bp.profile}

	bp.lx.SkipBlankLines()
	bp.parseProfileDirective(doc)
	bp.lx.SkipBlankLines()
	bp.parseModulesDirective(doc)
	bp.lx.SkipBlankLines()
	doc.Metadata = bp.parseMetadata()
	bp.lx.SkipBlankLines()

	doc.Blocks = bp.parseBlocks()
	doc.Span = Span{Start: 0, End: uint32(len(bp.input))}
	return doc
}

func (bp *blockParser) parseProfileDirective(doc *Document) {
	if bp.lx.IsEOF() {
		return
	}
	line := bp.lx.PeekLine()
	trimmed := line.Trimmed()
	if !strings.HasPrefix(trimmed, "@profile") {
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "@profile"))
	switch rest {
	case "litedoc":
		doc.Profile = Litedoc
		bp.profile = Litedoc
	case "md":
		doc.Profile = Md
		bp.profile = Md
	case "md-strict":
		doc.Profile = MdStrict
		bp.profile = MdStrict
	default:
		// Unknown value: leave the line in place to be handled as a
		// paragraph.
		return
	}
	bp.lx.NextLine()
}

func (bp *blockParser) parseModulesDirective(doc *Document) {
	if bp.lx.IsEOF() {
		return
	}
	line := bp.lx.PeekLine()
	trimmed := line.Trimmed()
	if !strings.HasPrefix(trimmed, "@modules") {
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "@modules"))
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if m, ok := parseModuleName(tok); ok {
			doc.Modules = append(doc.Modules, m)
		}
	}
	bp.modules = doc.Modules
	bp.lx.NextLine()
}

// parseMetadata recognizes an optional `--- meta ... ---` frontmatter
// block. Lines are re-sliced directly from bp.input via their span, not
// from the trimmed string used only to detect the closing fence, to
// avoid subtly diverging from the reference implementation's offset
// arithmetic.
func (bp *blockParser) parseMetadata() *Metadata {
	if bp.lx.IsEOF() {
		return nil
	}
	opener := bp.lx.PeekLine()
	trimmed := opener.Trimmed()
	if !strings.HasPrefix(trimmed, "---") || !strings.Contains(trimmed, "meta") {
		return nil
	}
	bp.lx.NextLine()

	md := &Metadata{}
	start := opener.Span.Start
	var end uint32 = opener.Span.End
	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.NextLine()
		end = line.Span.End
		isEnd := line.Trimmed() == "---"
		if isEnd {
			break
		}
		text := bp.input[line.Span.Start:line.Span.End]
		colon := strings.IndexByte(text, ':')
		if colon < 0 {
			// Lines without ':' are silently skipped (§4.3 step 4).
			continue
		}
		key := strings.TrimSpace(text[:colon])
		value := strings.TrimSpace(text[colon+1:])
		md.Entries = append(md.Entries, MetadataEntry{
			Key:   key,
			Value: parseAttrValue(value),
		})
	}
	md.Span = Span{Start: start, End: end}
	return md
}

func (bp *blockParser) parseBlocks() []*Block {
	var blocks []*Block
	for {
		bp.lx.SkipBlankLines()
		if bp.lx.IsEOF() {
			break
		}
		blocks = append(blocks, bp.parseBlock())
	}
	return blocks
}

func (bp *blockParser) parseBlock() *Block {
	line := bp.lx.PeekLine()
	trimmed := line.Trimmed()
	switch {
	case len(trimmed) > 0 && trimmed[0] == '#':
		return bp.parseHeading()
	case strings.HasPrefix(trimmed, "```"):
		return bp.parseCodeBlock()
	case trimmed == "---":
		return bp.parseThematicBreak()
	case strings.HasPrefix(trimmed, "::"):
		return bp.parseFencedDirective()
	case bp.hasModule(Html) && isHTMLBlockOpener(trimmed):
		return bp.parseBareHTMLBlock()
	default:
		return bp.parseParagraph()
	}
}

// parseBareHTMLBlock recognizes a bare "<tag ...>" opener (no "::html"
// fence) as an HtmlBlock, running until a blank line. This extends the
// Html module's gating beyond the explicit fence form, using
// golang.org/x/net/html/atom to recognize known block-level tag names.
func (bp *blockParser) parseBareHTMLBlock() *Block {
	first := bp.lx.NextLine()
	start := first.Span.Start
	end := first.Span.End
	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		if line.IsBlank() {
			break
		}
		bp.lx.NextLine()
		end = line.Span.End
	}
	return &Block{
		kind:    HtmlBlockKind,
		span:    Span{Start: start, End: end},
		content: bp.input[start:end],
	}
}

func (bp *blockParser) parseHeading() *Block {
	line := bp.lx.NextLine()
	text := line.Text
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return bp.paragraphFromLine(line)
	}
	rest := text[level:]
	if rest != "" && rest[0] != ' ' {
		return bp.paragraphFromLine(line)
	}
	content := strings.TrimLeft(rest, " \t")
	contentOffset := line.Span.Start + uint32(len(text)-len(content))
	return &Block{
		kind:    HeadingKind,
		span:    line.Span,
		level:   level,
		inlines: parseInlines(content, contentOffset),
	}
}

// paragraphFromLine turns a single already-consumed line into a
// Paragraph, used when a would-be heading fails its level/space check.
func (bp *blockParser) paragraphFromLine(line Line) *Block {
	return &Block{
		kind:    ParagraphKind,
		span:    line.Span,
		inlines: parseInlines(line.Text, line.Span.Start),
	}
}

func (bp *blockParser) parseCodeBlock() *Block {
	opener := bp.lx.NextLine()
	lang := strings.TrimSpace(strings.TrimPrefix(opener.Trimmed(), "```"))

	contentStart := opener.Span.End + 1
	if int(contentStart) > len(bp.input) {
		contentStart = uint32(len(bp.input))
	}
	var closerEnd uint32 = opener.Span.End
	contentEnd := contentStart
	for {
		if bp.lx.IsEOF() {
			closerEnd = contentEnd
			break
		}
		line := bp.lx.PeekLine()
		if line.Trimmed() == "```" {
			bp.lx.NextLine()
			closerEnd = line.Span.End
			break
		}
		line = bp.lx.NextLine()
		contentEnd = line.Span.End
		if int(contentEnd) < len(bp.input) {
			contentEnd++ // include the line's own newline in content
		}
	}
	if contentEnd > uint32(len(bp.input)) {
		contentEnd = uint32(len(bp.input))
	}
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	return &Block{
		kind:    CodeBlockKind,
		span:    Span{Start: opener.Span.Start, End: closerEnd},
		str:     lang,
		content: bp.input[contentStart:contentEnd],
	}
}

func (bp *blockParser) parseThematicBreak() *Block {
	line := bp.lx.NextLine()
	return &Block{kind: ThematicBreakKind, span: line.Span}
}

func (bp *blockParser) parseParagraph() *Block {
	first := bp.lx.NextLine()
	start := first.Span.Start
	end := first.Span.End
	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		if line.IsBlank() || startsNewBlock(line) {
			break
		}
		bp.lx.NextLine()
		end = line.Span.End
	}
	span := Span{Start: start, End: end}
	text := bp.input[start:end]
	return &Block{
		kind:    ParagraphKind,
		span:    span,
		inlines: parseInlines(text, start),
	}
}

// startsNewBlock reports whether line's trimmed leading byte begins a new
// top-level block, used to decide where a paragraph ends.
func startsNewBlock(line Line) bool {
	trimmed := line.Trimmed()
	if trimmed == "" {
		return false
	}
	if trimmed[0] == '#' {
		return true
	}
	if trimmed[0] == ':' && strings.HasPrefix(trimmed, "::") {
		return true
	}
	if strings.HasPrefix(trimmed, "```") {
		return true
	}
	if trimmed == "---" {
		return true
	}
	return false
}

var fenceDirectiveNames = map[string]bool{
	"list": true, "callout": true, "quote": true, "figure": true,
	"table": true, "footnotes": true, "math": true, "html": true,
}

func (bp *blockParser) parseFencedDirective() *Block {
	opener := bp.lx.PeekLine()
	trimmed := opener.Trimmed()
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "::"))
	name, attrs := splitFirstWord(rest)

	if !fenceDirectiveNames[name] {
		if bp.recover && name != "" {
			bp.recordError(UnknownDirectiveError(name, &opener.Span))
		}
		return bp.parseRawFencedBlock()
	}

	switch name {
	case "list":
		return bp.parseListBlock(attrs)
	case "callout":
		return bp.parseCalloutBlock(attrs)
	case "quote":
		return bp.parseQuoteBlock()
	case "figure":
		return bp.parseFigureBlock(attrs)
	case "table":
		return bp.parseTableBlock()
	case "footnotes":
		return bp.parseFootnotesBlock()
	case "math":
		return bp.parseMathBlock(attrs)
	case "html":
		return bp.parseHTMLBlock()
	}
	panic("unreachable fenced directive name: " + name)
}

func splitFirstWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

var listStarterPrefixes = []string{"::", "```", "#", "@profile", "@modules", "---"}

func isListBlockStarter(trimmed string) bool {
	if trimmed == "::" {
		return false // the list's own closer, handled separately
	}
	for _, p := range listStarterPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func (bp *blockParser) parseListBlock(attrs string) *Block {
	opener := bp.lx.NextLine()
	kind := Unordered
	var start int64
	hasStart := false
	for _, tok := range strings.Fields(attrs) {
		switch {
		case tok == "ordered":
			kind = Ordered
		case tok == "unordered":
			kind = Unordered
		case strings.HasPrefix(tok, "start="):
			if n, err := strconv.ParseInt(strings.TrimPrefix(tok, "start="), 10, 64); err == nil {
				start = n
				hasStart = true
			}
		}
	}

	var items []*Block
	var itemStart, itemEnd uint32
	haveItem := false

	// flushItem slices the item's content directly out of the original
	// input as one contiguous span (item_start..item_end), matching the
	// ground-truth parser rather than rebuilding an owned string: a
	// multi-line item's continuation bytes, "| " prefixes included, are
	// part of that span verbatim.
	flushItem := func() {
		if !haveItem {
			return
		}
		content := bp.input[itemStart:itemEnd]
		items = append(items, &Block{
			kind: ListItemKind,
			span: Span{Start: itemStart, End: itemEnd},
			children: []*Block{{
				kind:    ParagraphKind,
				span:    Span{Start: itemStart, End: itemEnd},
				inlines: parseInlines(content, itemStart),
			}},
		})
		haveItem = false
	}

	end := opener.Span.End
	for {
		if bp.lx.IsEOF() {
			bp.recordError(UnclosedDelimiterError("::list", &Span{Start: opener.Span.Start, End: end}))
			break
		}
		line := bp.lx.PeekLine()
		trimmed := line.Trimmed()
		if trimmed == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		if line.IsBlank() {
			bp.lx.NextLine()
			end = line.Span.End
			continue
		}
		if isListBlockStarter(trimmed) {
			bp.recordError(UnclosedDelimiterError("::list", &Span{Start: opener.Span.Start, End: end}))
			break
		}
		bp.lx.NextLine()
		end = line.Span.End
		switch {
		case strings.HasPrefix(trimmed, "- "):
			flushItem()
			dashOffset := strings.Index(line.Text, "- ")
			if dashOffset < 0 {
				dashOffset = 0
			}
			itemStart = line.Span.Start + uint32(dashOffset) + 2
			itemEnd = line.Span.End
			haveItem = true
		case strings.HasPrefix(trimmed, "| ") && haveItem:
			itemEnd = line.Span.End
		default:
			// Stray line inside the list with no item open: ignore.
		}
	}
	flushItem()
	return &Block{
		kind:     ListBlockKind,
		span:     Span{Start: opener.Span.Start, End: end},
		listKnd:  kind,
		hasNum:   hasStart,
		num:      start,
		children: items,
	}
}

// scanAttrs is the shared key=value scanner used by callout and figure
// directives: bare or quoted values, space-terminated bare values.
func scanAttrs(s string) map[string]string {
	out := map[string]string{}
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i >= len(s) {
			break
		}
		eq := strings.IndexByte(s[i:], '=')
		if eq < 0 {
			break
		}
		key := s[i : i+eq]
		i += eq + 1
		if i >= len(s) {
			out[key] = ""
			break
		}
		if s[i] == '"' || s[i] == '\'' {
			q := s[i]
			j := strings.IndexByte(s[i+1:], q)
			if j < 0 {
				out[key] = s[i+1:]
				i = len(s)
				break
			}
			out[key] = s[i+1 : i+1+j]
			i = i + 1 + j + 1
		} else {
			j := strings.IndexByte(s[i:], ' ')
			if j < 0 {
				out[key] = s[i:]
				i = len(s)
			} else {
				out[key] = s[i : i+j]
				i += j
			}
		}
	}
	return out
}

func (bp *blockParser) parseCalloutBlock(attrs string) *Block {
	opener := bp.lx.NextLine()
	a := scanAttrs(attrs)
	kind := a["type"]
	if kind == "" {
		kind = "note"
	}
	title, hasTitle := a["title"]

	blocks, end := bp.parseUntilFenceClose()
	return &Block{
		kind:     CalloutKind,
		span:     Span{Start: opener.Span.Start, End: end},
		str:      kind,
		hasTitle: hasTitle,
		title:    title,
		children: blocks,
	}
}

func (bp *blockParser) parseQuoteBlock() *Block {
	opener := bp.lx.NextLine()
	blocks, end := bp.parseUntilFenceClose()
	return &Block{
		kind:     QuoteKind,
		span:     Span{Start: opener.Span.Start, End: end},
		children: blocks,
	}
}

// parseUntilFenceClose implements the shared callout/quote sub-parser: a
// blank line flushes the pending paragraph, a "::" line terminates and
// flushes, other lines accumulate. Nested fenced directives are not
// recognized inside this sub-parser; a nested "::list" becomes part of
// the enclosing paragraph's text, mirroring the reference parser exactly.
func (bp *blockParser) parseUntilFenceClose() ([]*Block, uint32) {
	var blocks []*Block
	var paraStart, paraEnd uint32
	havePara := false
	end := bp.lx.Offset()

	flush := func() {
		if !havePara {
			return
		}
		text := bp.input[paraStart:paraEnd]
		blocks = append(blocks, &Block{
			kind:    ParagraphKind,
			span:    Span{Start: paraStart, End: paraEnd},
			inlines: parseInlines(text, paraStart),
		})
		havePara = false
	}

	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		if line.Trimmed() == "::" {
			bp.lx.NextLine()
			flush()
			return blocks, line.Span.End
		}
		if line.IsBlank() {
			bp.lx.NextLine()
			flush()
			end = int(line.Span.End)
			continue
		}
		bp.lx.NextLine()
		if !havePara {
			paraStart = line.Span.Start
			havePara = true
		}
		paraEnd = line.Span.End
		end = int(paraEnd)
	}
	flush()
	return blocks, uint32(end)
}

func (bp *blockParser) parseFigureBlock(attrs string) *Block {
	opener := bp.lx.NextLine()
	a := scanAttrs(attrs)
	caption, hasCaption := a["caption"]
	end := opener.Span.End

	if !bp.lx.IsEOF() {
		next := bp.lx.PeekLine()
		if next.Trimmed() == "::" {
			bp.lx.NextLine()
			end = next.Span.End
		}
	}
	return &Block{
		kind:    FigureKind,
		span:    Span{Start: opener.Span.Start, End: end},
		src:     a["src"],
		alt:     a["alt"],
		hasCapt: hasCaption,
		caption: caption,
	}
}

func (bp *blockParser) parseTableBlock() *Block {
	opener := bp.lx.NextLine()
	var rows []*Block
	sawSeparator := false
	end := opener.Span.End

	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		trimmed := line.Trimmed()
		if trimmed == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		if !strings.HasPrefix(trimmed, "|") {
			bp.recordError(UnclosedDelimiterError("::table", &Span{Start: opener.Span.Start, End: end}))
			break
		}
		bp.lx.NextLine()
		end = line.Span.End
		if strings.Contains(trimmed, "---") {
			sawSeparator = true
			continue
		}
		header := !sawSeparator && len(rows) == 0
		rows = append(rows, bp.parseTableRow(line, header))
	}
	return &Block{kind: TableKind, span: Span{Start: opener.Span.Start, End: end}, children: rows}
}

// parseTableRow splits line on "|", discarding the leading empty split
// produced by a row starting with "|" and any empty-trimmed cells,
// including the trailing one produced by a row ending with "|". Cell
// spans cover the bytes including surrounding padding within the line;
// a cell's inline content is the trimmed text.
func (bp *blockParser) parseTableRow(line Line, header bool) *Block {
	text := line.Text
	var cells []*Block
	parts := strings.Split(text, "|")
	// Recompute each part's absolute position by walking the original
	// string rather than by index arithmetic on lengths, since "|" is a
	// single byte and Split does not consume surrounding bytes.
	pos := line.Span.Start
	for idx, part := range parts {
		partStart := pos
		partEnd := pos + uint32(len(part))
		pos = partEnd + 1 // account for the consumed '|' separator
		if idx == 0 {
			continue
		}
		content := strings.TrimSpace(part)
		if content == "" {
			continue
		}
		contentStart := partStart + uint32(strings.Index(part, content))
		cells = append(cells, &Block{
			kind:    TableCellKind,
			span:    Span{Start: partStart, End: partEnd},
			inlines: parseInlines(content, contentStart),
		})
	}
	return &Block{kind: TableRowKind, span: line.Span, header: header, children: cells}
}

func (bp *blockParser) parseFootnotesBlock() *Block {
	opener := bp.lx.NextLine()
	var defs []*Block
	end := opener.Span.End

	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		trimmed := line.Trimmed()
		if trimmed == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		if line.IsBlank() {
			bp.lx.NextLine()
			end = line.Span.End
			continue
		}
		bp.lx.NextLine()
		end = line.Span.End
		if !strings.HasPrefix(trimmed, "[^") {
			continue
		}
		closeIdx := strings.Index(trimmed, "]:")
		if closeIdx < 0 {
			continue
		}
		label := trimmed[2:closeIdx]
		afterColon := trimmed[closeIdx+2:]
		body := strings.TrimSpace(afterColon)
		leadingOuter := len(line.Text) - len(strings.TrimLeft(line.Text, " \t"))
		leadingInner := len(afterColon) - len(strings.TrimLeft(afterColon, " \t"))
		bodyOffset := line.Span.Start + uint32(leadingOuter+closeIdx+2+leadingInner)
		defs = append(defs, &Block{
			kind: FootnoteDefKind,
			span: line.Span,
			str:  label,
			children: []*Block{{
				kind:    ParagraphKind,
				span:    line.Span,
				inlines: parseInlines(body, bodyOffset),
			}},
		})
	}
	return &Block{kind: FootnotesKind, span: Span{Start: opener.Span.Start, End: end}, children: defs}
}

func (bp *blockParser) parseMathBlock(attrs string) *Block {
	opener := bp.lx.NextLine()
	display := strings.Contains(attrs, "block") || strings.Contains(attrs, "display")

	contentStart := opener.Span.End + 1
	if int(contentStart) > len(bp.input) {
		contentStart = uint32(len(bp.input))
	}
	contentEnd := contentStart
	end := opener.Span.End
	for {
		if bp.lx.IsEOF() {
			bp.recordError(UnclosedDelimiterError("::math", &Span{Start: opener.Span.Start, End: end}))
			break
		}
		line := bp.lx.PeekLine()
		if line.Trimmed() == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		line = bp.lx.NextLine()
		contentEnd = line.Span.End
		if int(contentEnd) < len(bp.input) {
			contentEnd++ // include the line's own newline in content
		}
		end = line.Span.End
	}
	if contentEnd > uint32(len(bp.input)) {
		contentEnd = uint32(len(bp.input))
	}
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	return &Block{
		kind:    MathBlockKind,
		span:    Span{Start: opener.Span.Start, End: end},
		display: display,
		content: bp.input[contentStart:contentEnd],
	}
}

func (bp *blockParser) parseHTMLBlock() *Block {
	opener := bp.lx.NextLine()
	if !bp.hasModule(Html) {
		return bp.rawFallback(opener)
	}

	contentStart := opener.Span.End + 1
	if int(contentStart) > len(bp.input) {
		contentStart = uint32(len(bp.input))
	}
	contentEnd := contentStart
	end := opener.Span.End
	for {
		if bp.lx.IsEOF() {
			bp.recordError(UnclosedDelimiterError("HTML block", &Span{Start: opener.Span.Start, End: end}))
			break
		}
		line := bp.lx.PeekLine()
		if line.Trimmed() == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		line = bp.lx.NextLine()
		contentEnd = line.Span.End
		if int(contentEnd) < len(bp.input) {
			contentEnd++ // include the line's own newline in content
		}
		end = line.Span.End
	}
	if contentEnd > uint32(len(bp.input)) {
		contentEnd = uint32(len(bp.input))
	}
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	return &Block{
		kind:    HtmlBlockKind,
		span:    Span{Start: opener.Span.Start, End: end},
		content: bp.input[contentStart:contentEnd],
	}
}

// rawFallback treats an already-consumed opener line as the start of a
// generic raw fenced block, reading until a "::" closer.
func (bp *blockParser) rawFallback(opener Line) *Block {
	return bp.readRawBody(opener)
}

func (bp *blockParser) parseRawFencedBlock() *Block {
	opener := bp.lx.NextLine()
	return bp.readRawBody(opener)
}

func (bp *blockParser) readRawBody(opener Line) *Block {
	contentStart := opener.Span.End + 1
	if int(contentStart) > len(bp.input) {
		contentStart = uint32(len(bp.input))
	}
	contentEnd := contentStart
	end := opener.Span.End
	for {
		if bp.lx.IsEOF() {
			break
		}
		line := bp.lx.PeekLine()
		if line.Trimmed() == "::" {
			bp.lx.NextLine()
			end = line.Span.End
			break
		}
		line = bp.lx.NextLine()
		contentEnd = line.Span.End
		if int(contentEnd) < len(bp.input) {
			contentEnd++ // include the line's own newline in content
		}
		end = line.Span.End
	}
	if contentEnd > uint32(len(bp.input)) {
		contentEnd = uint32(len(bp.input))
	}
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	return &Block{
		kind:    RawBlockKind,
		span:    Span{Start: opener.Span.Start, End: end},
		content: bp.input[contentStart:contentEnd],
	}
}
