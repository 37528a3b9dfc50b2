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

// parseAttrValue parses the trimmed right-hand side of a metadata entry
// or directive attribute into an AttrValue, in the priority order: bool,
// list, int, float, string.
func parseAttrValue(raw string) AttrValue {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return AttrValue{Kind: AttrBool, Bool: true}
	case "false":
		return AttrValue{Kind: AttrBool, Bool: false}
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		inner := trimmed[1 : len(trimmed)-1]
		items := parseListItems(inner)
		values := make([]AttrValue, 0, len(items))
		for _, it := range items {
			it = strings.TrimSpace(it)
			if it == "" {
				continue
			}
			values = append(values, parseAttrValue(it))
		}
		return AttrValue{Kind: AttrList, List: values}
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return AttrValue{Kind: AttrInt, Int: n}
	}
	if strings.Contains(trimmed, ".") {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return AttrValue{Kind: AttrFloat, Float: f}
		}
	}
	return AttrValue{Kind: AttrStr, Str: stripQuotes(trimmed)}
}

// stripQuotes removes one matching pair of surrounding " or ' quotes, if
// present.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// parseListItems splits inner on commas that fall outside of a quoted
// span (' or "), matching the comma-splitting rule used for `[...]`
// attribute values. A quote character toggles "inside a quote" state
// regardless of which of ' or " it is, mirroring the original's
// toggle-based scanner rather than tracking the two quote kinds
// independently.
func parseListItems(inner string) []string {
	var items []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '"' || c == '\'':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			items = append(items, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	items = append(items, cur.String())
	return items
}
