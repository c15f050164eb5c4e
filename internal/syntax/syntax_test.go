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

package syntax_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/usingsimplifier/internal/syntax"
)

// sample builds the tree of
//
//	using A;
//
//	namespace N
//	{
//	    using B;
//	    namespace M { }
//	}
func sample() (tree *Tree, a, n, b, m *Node) {
	a = NewDirective(KindUsingDirective, Span{Start: 0, End: 8}, "using A;", "A").WithTrivia("", "\n")
	b = NewDirective(KindUsingDirective, Span{Start: 28, End: 36}, "using B;", "B").WithTrivia("    ", "\n")
	m = NewNamespace(Span{Start: 41, End: 56}, "namespace M {", "M", false, "", nil, " }").WithTrivia("    ", "\n")
	n = NewNamespace(Span{Start: 10, End: 58}, "namespace N\n{", "N", false, "\n", []*Node{b, m}, "}").WithTrivia("\n", "\n")

	return NewTree(NewFileScope([]*Node{a, n}, ""), false), a, n, b, m
}

const sampleSource = "using A;\n\nnamespace N\n{\n    using B;\n    namespace M { }\n}\n"

func TestRender(t *testing.T) {
	t.Parallel()

	tree, _, _, _, _ := sample()

	if diff := cmp.Diff(sampleSource, tree.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor(t *testing.T) {
	t.Parallel()

	tree, a, n, _, m := sample()

	e := NewEditor(tree)
	e.RemoveNode(a)
	e.ReplaceNodeFunc(n, func(current *Node) *Node { return current.AddUsings(a) })
	e.ReplaceNodeFunc(m, func(current *Node) *Node { return current.AddUsings(a) })

	got := e.Commit()

	const want = "namespace N\n{\n    using B;\n    using A;\n    namespace M { using A;\n }\n}\n"
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("Commit() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(sampleSource, tree.String()); diff != "" {
		t.Errorf("Original tree modified (-want +got):\n%s", diff)
	}
}

func TestReplaceNode(t *testing.T) {
	t.Parallel()

	tree, _, n, _, m := sample()

	replacement := NewNamespace(NoSpan, "namespace R\n{", "R", false, "\n", nil, "}").WithTrivia("\n", "\n")
	x := NewDirective(KindUsingDirective, NoSpan, "using X;", "X")

	// Replacing N discards the edit below it.
	e := NewEditor(tree)
	e.ReplaceNodeFunc(m, func(current *Node) *Node { return current.AddUsings(x) })
	e.ReplaceNode(n, replacement)

	const want = "using A;\n\nnamespace R\n{\n}\n"
	if diff := cmp.Diff(want, e.Commit().String()); diff != "" {
		t.Errorf("Commit() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddUsingsIndent(t *testing.T) {
	t.Parallel()

	x := NewDirective(KindUsingDirective, Span{Start: 0, End: 8}, "using X;", "X").WithTrivia("", "")

	tests := [...]struct {
		name string
		ns   *Node
		want string
	}{
		{
			name: "empty_block",
			ns:   NewNamespace(NoSpan, "namespace N\n{", "N", false, "\n", nil, "}").WithTrivia("  ", ""),
			want: "  namespace N\n{\n      using X;\n}",
		},
		{
			name: "empty_single_line",
			ns:   NewNamespace(NoSpan, "namespace N {", "N", false, "", nil, " }"),
			want: "namespace N { using X;\n }",
		},
		{
			name: "before_member",
			ns: NewNamespace(NoSpan, "namespace N\n{", "N", false, "\n", []*Node{
				NewDirective(KindOpaque, NoSpan, "class C {}", "").WithTrivia("\t", "\n"),
			}, "}"),
			want: "namespace N\n{\n\tusing X;\n\tclass C {}\n}",
		},
		{
			name: "not_a_namespace",
			ns:   NewDirective(KindOpaque, NoSpan, "class C {}", ""),
			want: "class C {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.ns.AddUsings(x)

			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("AddUsings() mismatch (-want +got):\n%s", diff)
			}

			for c := range got.ChildrenOf(KindUsingDirective) {
				if c.Span().Valid() {
					t.Errorf("Copied directive has source span %v", c.Span())
				}
			}
		})
	}
}

func TestFindNode(t *testing.T) {
	t.Parallel()

	tree, a, n, b, _ := sample()

	tests := [...]struct {
		name   string
		offset int
		want   []*Node
	}{
		{"root_directive", 3, []*Node{tree.Root(), a}},
		{"nested_directive", 30, []*Node{tree.Root(), n, b}},
		{"namespace_header", 12, []*Node{tree.Root(), n}},
		{"whitespace", 9, []*Node{tree.Root()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := tree.FindNode(Point(tt.offset))
			if !slices.Equal(p, Path(tt.want)) {
				t.Errorf("Got path of length %d ending in %s, want length %d", len(p), p.Node().Kind(), len(tt.want))
			}
		})
	}

	if _, ok := tree.FindNode(Point(30)).Enclosing(KindNamespaceScope); !ok {
		t.Error("Expected enclosing namespace")
	}

	p, ok := tree.PathTo(b)
	if !ok {
		t.Fatal("PathTo() found nothing")
	}

	var kinds []Kind
	for node := range p.Ancestors() {
		kinds = append(kinds, node.Kind())
	}

	if diff := cmp.Diff([]Kind{KindUsingDirective, KindNamespaceScope, KindFileScope}, kinds); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescendantsOf(t *testing.T) {
	t.Parallel()

	tree, _, n, _, m := sample()

	got := slices.Collect(tree.Root().DescendantsOf(KindNamespaceScope))
	if !slices.Equal(got, []*Node{n, m}) {
		t.Errorf("Got %d namespaces, want N and M", len(got))
	}

	if got, want := KindNamespaceScope.String(), "NamespaceScope"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestConditional(t *testing.T) {
	t.Parallel()

	ns := NewNamespace(Span{Start: 10, End: 25}, "namespace N {", "N", false, "", nil, " }")
	cond := NewConditional(Span{Start: 0, End: 32}, "#if DEBUG\n", []*Node{ns.WithTrivia("", "\n")}, "#endif")
	tree := NewTree(NewFileScope([]*Node{cond.WithTrivia("", "\n")}, ""), false)

	if got, want := tree.String(), "#if DEBUG\nnamespace N { }\n#endif\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	var names []string
	for n := range tree.Root().DescendantsOf(KindNamespaceScope) {
		names = append(names, n.Name())
	}

	if !slices.Equal(names, []string{"N"}) {
		t.Errorf("Got namespaces %q, want [N]", names)
	}

	if KindConditional.Scope() {
		t.Error("Conditional blocks are not scopes")
	}

	if got, want := KindConditional.String(), "Conditional"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
