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

func TestUnexpectedEOFIsNonRecoverable(t *testing.T) {
	err := UnexpectedEOFError("eof while parsing", nil)
	if err.Recoverable {
		t.Error("UnexpectedEOFError(...).Recoverable = true; want false")
	}
	if err.Kind != UnexpectedEOF {
		t.Errorf("UnexpectedEOFError(...).Kind = %v; want %v", err.Kind, UnexpectedEOF)
	}
}

func TestOtherErrorsAreRecoverableByDefault(t *testing.T) {
	for _, kind := range []ErrorKind{UnclosedDelimiter, InvalidSyntax, UnknownDirective, InvalidMetadata, Other} {
		err := NewParseError(kind, "msg", nil)
		if !err.Recoverable {
			t.Errorf("NewParseError(%v, ...).Recoverable = false; want true", kind)
		}
	}
}

func TestWithKindAndNonRecoverable(t *testing.T) {
	err := NewParseError(Other, "msg", nil).WithKind(InvalidSyntax).NonRecoverable()
	if err.Kind != InvalidSyntax {
		t.Errorf("err.Kind = %v; want %v", err.Kind, InvalidSyntax)
	}
	if err.Recoverable {
		t.Error("err.Recoverable = true; want false")
	}
}

func TestParseErrorError(t *testing.T) {
	span := Span{Start: 3, End: 7}
	err := UnknownDirectiveError("foo", &span)
	got := err.Error()
	want := `UnknownDirective: unknown directive "foo" (at 3..7)`
	if got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestErrorCollector(t *testing.T) {
	var c ErrorCollector
	if !c.IsEmpty() {
		t.Error("new ErrorCollector.IsEmpty() = false; want true")
	}
	c.Push(NewParseError(Other, "a", nil))
	c.Push(UnexpectedEOFError("b", nil))
	if c.IsEmpty() {
		t.Error("ErrorCollector.IsEmpty() = true after Push; want false")
	}
	if got, want := c.Len(), 2; got != want {
		t.Errorf("Len() = %d; want %d", got, want)
	}
	if !c.HasFatal() {
		t.Error("HasFatal() = false; want true (one UnexpectedEOF pushed)")
	}
	errs := c.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors() returned %d entries; want 2", len(errs))
	}
	if errs[0].Message != "a" || errs[1].Message != "b" {
		t.Errorf("Errors() = %v; want order preserved [a, b]", errs)
	}
}
