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

	"golang.org/x/net/html/atom"
)

// htmlBlockTags lists the known HTML block-level element names that, when
// the Html module is active, open a bare HtmlBlock on a line starting
// with "<tag". Names come from golang.org/x/net/html/atom's known tag
// table rather than a hand-maintained list.
var htmlBlockTags = buildHTMLBlockTags()

func buildHTMLBlockTags() map[string]bool {
	names := []atom.Atom{
		atom.Address, atom.Article, atom.Aside, atom.Base, atom.Basefont,
		atom.Blockquote, atom.Body, atom.Caption, atom.Center, atom.Col,
		atom.Colgroup, atom.Dd, atom.Details, atom.Dialog, atom.Dir,
		atom.Div, atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption,
		atom.Figure, atom.Footer, atom.Form, atom.Frame, atom.Frameset,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Head,
		atom.Header, atom.Hr, atom.Html, atom.Iframe, atom.Legend,
		atom.Li, atom.Link, atom.Main, atom.Menu, atom.Menuitem,
		atom.Nav, atom.Noframes, atom.Ol, atom.Optgroup, atom.Option,
		atom.P, atom.Param, atom.Section, atom.Summary, atom.Table,
		atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead, atom.Title,
		atom.Tr, atom.Track, atom.Ul,
	}
	m := make(map[string]bool, len(names))
	for _, a := range names {
		m[a.String()] = true
	}
	return m
}

// isHTMLBlockOpener reports whether trimmed (a trimmed line) opens a bare
// HTML block: a "<" immediately followed by a known block-level tag name.
func isHTMLBlockOpener(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	rest := trimmed[1:]
	rest = strings.TrimPrefix(rest, "/")
	i := 0
	for i < len(rest) && isTagNameByte(rest[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	name := strings.ToLower(rest[:i])
	return htmlBlockTags[name]
}

func isTagNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-'
}
