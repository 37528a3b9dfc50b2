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

func TestSpanLen(t *testing.T) {
	tests := []struct {
		span Span
		want uint32
	}{
		{Span{0, 5}, 5},
		{Span{3, 3}, 0},
		{Span{5, 3}, 0},
	}
	for _, test := range tests {
		if got := test.span.Len(); got != test.want {
			t.Errorf("Span{%d,%d}.Len() = %d; want %d", test.span.Start, test.span.End, got, test.want)
		}
	}
}

func TestSpanIsEmpty(t *testing.T) {
	if !(Span{4, 4}).IsEmpty() {
		t.Error("Span{4,4}.IsEmpty() = false; want true")
	}
	if (Span{4, 5}).IsEmpty() {
		t.Error("Span{4,5}.IsEmpty() = true; want false")
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 2, End: 5}
	for offset := uint32(0); offset < 8; offset++ {
		want := offset >= 2 && offset < 5
		if got := s.Contains(offset); got != want {
			t.Errorf("Span{2,5}.Contains(%d) = %v; want %v", offset, got, want)
		}
	}
}

func TestSpanMerge(t *testing.T) {
	tests := []struct {
		a, b, want Span
	}{
		{Span{2, 5}, Span{7, 9}, Span{2, 9}},
		{Span{7, 9}, Span{2, 5}, Span{2, 9}},
		{Span{2, 8}, Span{3, 4}, Span{2, 8}},
	}
	for _, test := range tests {
		if got := test.a.Merge(test.b); got != test.want {
			t.Errorf("Span{%d,%d}.Merge(Span{%d,%d}) = %v; want %v",
				test.a.Start, test.a.End, test.b.Start, test.b.End, got, test.want)
		}
	}
}

func TestSpanSlice(t *testing.T) {
	input := "hello world"
	s := Span{Start: 6, End: 11}
	if got, want := s.Slice(input), "world"; got != want {
		t.Errorf("Slice(%q) = %q; want %q", input, got, want)
	}
}
