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

package astutil_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
	"fillmore-labs.com/usingsimplifier/internal/testsource"
)

func TestIsGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		src  string
		want bool
	}{
		{"plain", "Program.cs", "using System;\n", false},
		{"g", "Program.g.cs", "", true},
		{"gi", "Program.g.i.cs", "", true},
		{"designer", "Form1.Designer.cs", "", true},
		{"generated", "Model.generated.cs", "", true},
		{"header", "Program.cs", "// <auto-generated>\n// text\n// </auto-generated>\nusing System;\n", true},
		{"header_block", "Program.cs", "/*\n * <autogenerated />\n */\nusing System;\n", true},
		{"after_code", "Program.cs", "using System;\n// <auto-generated/>\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsGenerated(tt.file, []byte(tt.src)); got != tt.want {
				t.Errorf("Got IsGenerated(%q) = %t, want %t", tt.file, got, tt.want)
			}
		})
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"//nolint:usingsimplifier", true},
		{"// nolint:all", true},
		{"//nolint:scopeguard,UsingSimplifier", true},
		{"//nolint:scopeguard", false},
		{"// just a comment", false},
		{"/* nolint:usingsimplifier */", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.comment); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

func TestFileHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"header", "//nolint:usingsimplifier\nusing System;\nnamespace N { }\n", true},
		{"trailing", "using System; //nolint:usingsimplifier\nnamespace N { }\n", true},
		{"inside", "using System;\nnamespace N\n{\n    //nolint:usingsimplifier\n}\n", false},
		{"none", "using System;\nnamespace N { }\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			if got := FileHasNoLint(tree.Root()); got != tt.want {
				t.Errorf("Got FileHasNoLint() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = "using A;\nusing B;\n"

	fset := token.NewFileSet()
	file := NewCurrentFile(fset, "Program.cs", []byte(src))

	if !file.Valid() || file.Generated() || file.Name() != "Program.cs" {
		t.Fatalf("Unexpected file %v", file)
	}

	rng := file.Range(syntax.Span{Start: 9, End: 17})
	if got := fset.Position(rng.Pos()); got.Line != 2 || got.Column != 1 {
		t.Errorf("Got start %v, want 2:1", got)
	}

	if got := fset.Position(rng.End()).Offset; got != 17 {
		t.Errorf("Got end offset %d, want 17", got)
	}

	if got := file.Position(12); got.Line != 2 || got.Column != 4 {
		t.Errorf("Got position %v, want 2:4", got)
	}

	if got := file.Range(syntax.NoSpan); got.Pos() != file.Handle().Pos(0) {
		t.Errorf("Got invalid span at %v, want file start", got.Pos())
	}

	if NewCurrentFile(nil, "Program.cs", nil).Valid() {
		t.Error("Expected invalid file without file set")
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	file := NewCurrentFile(fset, "Program.cs", []byte("using A;\n"))

	var got []analysis.Diagnostic

	pass := &analysis.Pass{Fset: fset, Report: func(d analysis.Diagnostic) { got = append(got, d) }}
	InternalError(pass, file, syntax.Span{Start: 0, End: 8}, "broken %s", "tree")

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	if want := "Internal Error: broken tree"; got[0].Message != want {
		t.Errorf("Got message %q, want %q", got[0].Message, want)
	}
}
