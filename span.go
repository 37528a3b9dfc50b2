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

// A Span is a half-open byte range [Start, End) into the input a [Parser]
// was given. Every AST node carries exactly one Span covering all bytes it
// consumed, including any fences or delimiters.
type Span struct {
	Start uint32
	End   uint32
}

// NullSpan is the zero-length, zero-offset sentinel span used for nodes
// that have no meaningful source extent of their own.
func NullSpan() Span {
	return Span{}
}

// Len returns the number of bytes the span covers. If End < Start, Len
// returns 0 rather than panicking or wrapping.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether offset falls within [s.Start, s.End).
func (s Span) Contains(offset uint32) bool {
	return offset >= s.Start && offset < s.End
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Slice returns the substring of input covered by s. It panics if the span
// falls outside input's bounds, which signals a parser bug rather than
// malformed input.
func (s Span) Slice(input string) string {
	return input[s.Start:s.End]
}
