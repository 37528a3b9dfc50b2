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

// ParseResult is the return value of [Parser.ParseWithRecovery]: the
// (possibly partial) document produced and every error recorded along
// the way.
type ParseResult struct {
	Document *Document
	Errors   []*ParseError
}

// Parser holds the configuration for parsing LiteDoc input: the default
// profile (overridable per-document by an `@profile` directive) and
// whether unknown directives are reported as errors. A Parser
// value is not safe for concurrent use; create one per goroutine or
// serialize access externally.
type Parser struct {
	profile Profile
	recover bool
	errs    ErrorCollector
	modules []Module
}

// NewParser returns a Parser configured with the Litedoc profile and
// error recovery enabled, matching the defaults in §4.4.
func NewParser() *Parser {
	return &Parser{profile: Litedoc, recover: true}
}

// WithRecovery configures whether an unknown `::name` directive is
// recorded as an UnknownDirective error. The directive becomes a RawBlock
// either way, and parsing always continues to the end of the input. It
// returns p for chaining.
func (p *Parser) WithRecovery(recover bool) *Parser {
	p.recover = recover
	return p
}

// WithProfile sets the default profile used when the input does not
// declare one via `@profile`. It returns p for chaining.
func (p *Parser) WithProfile(profile Profile) *Parser {
	p.profile = profile
	return p
}

// HasModule reports whether m was declared in the most recently parsed
// document.
func (p *Parser) HasModule(m Module) bool {
	for _, dm := range p.modules {
		if dm == m {
			return true
		}
	}
	return false
}

// Parse runs the full pipeline over input. If any error was recorded
// during parsing, Parse returns the first one together with the
// document, which is still produced (possibly partial) in that case,
// matching §4.4's "parse" contract.
func (p *Parser) Parse(input string) (*Document, error) {
	result := p.ParseWithRecovery(input)
	if len(result.Errors) > 0 {
		return result.Document, result.Errors[0]
	}
	return result.Document, nil
}

// ParseWithRecovery runs the full pipeline over input and always returns
// both the resulting document and every error recorded. Parsing never
// stops early; the recovery flag set by WithRecovery only decides
// whether unknown directives are recorded as errors.
func (p *Parser) ParseWithRecovery(input string) ParseResult {
	p.errs = ErrorCollector{}
	bp := newBlockParser(input, p.profile, &p.errs, p.recover)
	doc := bp.parseDocument()
	p.modules = doc.Modules
	return ParseResult{Document: doc, Errors: p.errs.Errors()}
}
