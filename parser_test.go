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

import "testing"

func TestParseReturnsFirstError(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("::unknown\nhi\n::")
	if err == nil {
		t.Fatal("Parse(...) err = nil; want UnknownDirective error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err type = %T; want *ParseError", err)
	}
	if pe.Kind != UnknownDirective {
		t.Errorf("err.Kind = %v; want %v", pe.Kind, UnknownDirective)
	}
}

func TestParseNoErrorReturnsNilError(t *testing.T) {
	p := NewParser()
	doc, err := p.Parse("# H")
	if err != nil {
		t.Fatalf("err = %v; want nil", err)
	}
	if doc == nil || len(doc.Blocks) != 1 {
		t.Fatalf("doc = %+v; want single block", doc)
	}
}

func TestParseWithRecoveryAlwaysCompletes(t *testing.T) {
	p := NewParser()
	result := p.ParseWithRecovery("::unknown\nhi\n::\n\n# after")
	if result.Document == nil {
		t.Fatal("result.Document = nil; want non-nil")
	}
	if len(result.Document.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d; want 2 (RawBlock + Heading)", len(result.Document.Blocks))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d; want 1", len(result.Errors))
	}
}

func TestWithProfileSetsDefault(t *testing.T) {
	p := NewParser().WithProfile(MdStrict)
	doc, _ := p.Parse("# H")
	if doc.Profile != MdStrict {
		t.Errorf("doc.Profile = %v; want %v", doc.Profile, MdStrict)
	}
}

func TestHasModuleReflectsLastParse(t *testing.T) {
	p := NewParser()
	p.ParseWithRecovery("@modules tables\n\n# H")
	if !p.HasModule(Tables) {
		t.Error("HasModule(Tables) = false after declaring it; want true")
	}
	p.ParseWithRecovery("# H")
	if p.HasModule(Tables) {
		t.Error("HasModule(Tables) = true after a parse that did not declare it; want false")
	}
}

func TestParserIsDeterministic(t *testing.T) {
	input := "# Title\n\nSome *emphasis* and [[L|u]].\n\n::callout type=\"note\"\nBody\n::"
	p1 := NewParser()
	p2 := NewParser()
	r1 := p1.ParseWithRecovery(input)
	r2 := p2.ParseWithRecovery(input)
	if len(r1.Document.Blocks) != len(r2.Document.Blocks) {
		t.Fatalf("non-deterministic block counts: %d vs %d", len(r1.Document.Blocks), len(r2.Document.Blocks))
	}
	for i := range r1.Document.Blocks {
		if r1.Document.Blocks[i].Kind() != r2.Document.Blocks[i].Kind() {
			t.Errorf("block %d kind differs: %v vs %v", i, r1.Document.Blocks[i].Kind(), r2.Document.Blocks[i].Kind())
		}
		if r1.Document.Blocks[i].Span() != r2.Document.Blocks[i].Span() {
			t.Errorf("block %d span differs: %v vs %v", i, r1.Document.Blocks[i].Span(), r2.Document.Blocks[i].Span())
		}
	}
}
