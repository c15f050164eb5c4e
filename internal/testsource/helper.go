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

// Package testsource parses C# snippets for tests.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/usingsimplifier/internal/csharp"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Cursor marks the cursor position in a snippet passed to [ParseCursor].
const Cursor = "$0"

// Parse parses src and fails the test on error.
func Parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	tree, err := csharp.Parse(tb.Context(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return tree
}

// ParseCursor removes the [Cursor] marker from src, parses the result and returns the marker offset.
func ParseCursor(tb testing.TB, src string) (tree *syntax.Tree, offset int) {
	tb.Helper()

	offset = strings.Index(src, Cursor)
	if offset < 0 {
		tb.Fatalf("No cursor marker %q in source %q", Cursor, src)
	}

	return Parse(tb, strings.Replace(src, Cursor, "", 1)), offset
}
