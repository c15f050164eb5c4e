// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Span is a half-open byte range [Start, End) in the source a tree was parsed from.
type Span struct {
	Start, End int
}

// NoSpan marks nodes that were not parsed from source.
var NoSpan = Span{Start: -1, End: -1}

// Point returns the empty span at offset.
func Point(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Valid reports whether s denotes a range in the source.
func (s Span) Valid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	if !s.Valid() {
		return 0
	}

	return s.End - s.Start
}

// Contains reports whether o lies within s. An empty o at the end of s is contained.
func (s Span) Contains(o Span) bool {
	return s.Valid() && o.Valid() && s.Start <= o.Start && o.End <= s.End
}
