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

package relocate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
	"fillmore-labs.com/usingsimplifier/internal/testsource"
)

func TestCheckNotApplicable(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		root bool
	}{
		{
			name: "no_directives",
			src:  "namespace App { class C {} }\n",
			root: true,
		},
		{
			name: "only_nested_directives",
			src:  "namespace App { using System; class C {} }\n",
			root: true,
		},
		{
			name: "no_namespace",
			src:  "using System;\n\nclass C {}\n",
			root: true,
		},
		{
			name: "global_using",
			src:  "global using System;\nnamespace App { }\n",
			root: true,
		},
		{
			name: "cursor_in_nested_directive",
			src:  "using B;\nnamespace N { using A$0; }\n",
		},
		{
			name: "cursor_outside_directive",
			src:  "using System;\nnamespace App { class $0C {} }\n",
		},
		{
			name: "cursor_in_directive_without_namespace",
			src:  "using Sys$0tem;\nclass C {}\n",
		},
		{
			name: "conditional_directive",
			src:  "#if DEBUG\nusing A;\n#endif\nnamespace N { }\n",
			root: true,
		},
		{
			name: "cursor_in_conditional_directive",
			src:  "#if DEBUG\nusing A$0;\n#endif\nnamespace N { }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				tree    *syntax.Tree
				trigger Trigger
			)

			if tt.root {
				tree, trigger = testsource.Parse(t, tt.src), AtRoot()
			} else {
				var offset int
				tree, offset = testsource.ParseCursor(t, tt.src)
				trigger = AtOffset(offset)
			}

			a, err := Check(t.Context(), tree, trigger)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			if a != nil {
				t.Errorf("Got applicable action moving %v, want none", names(a.Directives()))
			}
		})
	}
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{
			name: "single_line",
			src:  "using System;\nnamespace App { class C {} }",
			want: "namespace App { using System;\n class C {} }",
		},
		{
			name: "order_preserved",
			src: `using A;
using B;
using C;

namespace N1
{
    using X;

    class C1 {}
}

namespace N2
{
    class C2 {}
}
`,
			want: `namespace N1
{
    using X;
    using A;
    using B;
    using C;

    class C1 {}
}

namespace N2
{
    using A;
    using B;
    using C;
    class C2 {}
}
`,
		},
		{
			name: "fan_out",
			src:  "using X;\nnamespace N1 { using A; namespace N2 { } }\n",
			want: "namespace N1 { using A; using X;\n namespace N2 { using X;\n } }\n",
		},
		{
			name: "sibling_namespaces",
			src:  "using A;\nusing B;\nnamespace N1\n{\n}\nnamespace N2\n{\n}\n",
			want: "namespace N1\n{\n    using A;\n    using B;\n}\nnamespace N2\n{\n    using A;\n    using B;\n}\n",
		},
		{
			name: "global_using_stays",
			src:  "global using G;\nusing A;\nnamespace N\n{\n}\n",
			want: "global using G;\nnamespace N\n{\n    using A;\n}\n",
		},
		{
			name: "after_extern_alias",
			src:  "using A;\nnamespace N\n{\n    extern alias Bar;\n    class C {}\n}\n",
			want: "namespace N\n{\n    extern alias Bar;\n    using A;\n    class C {}\n}\n",
		},
		{
			name: "file_scoped_namespace",
			src:  "using System;\n\nnamespace App;\n\npublic class C {}\n",
			want: "namespace App;\nusing System;\n\npublic class C {}\n",
		},
		{
			name: "leading_comment",
			src:  "// header\nusing A;\n\nnamespace N\n{\n    class C {}\n}\n",
			want: "// header\n\nnamespace N\n{\n    using A;\n    class C {}\n}\n",
		},
		{
			name: "trailing_comment",
			src:  "using A; // c\nnamespace N\n{\n    class C {}\n}\n",
			want: "namespace N\n{\n    using A; // c\n    class C {}\n}\n",
		},
		{
			name: "conditional_namespace",
			src:  "using A;\n#if DEBUG\nnamespace N\n{\n}\n#endif\n",
			want: "#if DEBUG\nnamespace N\n{\n    using A;\n}\n#endif\n",
		},
		{
			name: "conditional_branches",
			src:  "using A;\n#if DEBUG\nnamespace N { }\n#else\nnamespace M { }\n#endif\n",
			want: "#if DEBUG\nnamespace N { using A;\n }\n#else\nnamespace M { using A;\n }\n#endif\n",
		},
		{
			name: "static_and_alias",
			src:  "using static System.Math;\nusing IO = System.IO;\nnamespace N\n{\n    class C {}\n}\n",
			want: "namespace N\n{\n    using static System.Math;\n    using IO = System.IO;\n    class C {}\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			tree := testsource.Parse(t, tt.src)

			a, err := Check(ctx, tree, AtRoot())
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			if a == nil {
				t.Fatal("Action not applicable")
			}

			got, err := a.Invoke(ctx)
			if err != nil {
				t.Fatalf("Invoke failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("Invoke() mismatch (-want +got):\n%s", diff)
			}

			if tree.String() != tt.src {
				t.Errorf("Original tree modified: %q", tree.String())
			}

			// Running again offers nothing: all directives are nested now.
			again, err := Check(ctx, testsource.Parse(t, got.String()), AtRoot())
			if err != nil {
				t.Fatalf("Second Check failed: %v", err)
			}

			if again != nil {
				t.Errorf("Got applicable action on own output moving %v", names(again.Directives()))
			}
		})
	}
}

func TestCheckPoint(t *testing.T) {
	t.Parallel()

	tree, offset := testsource.ParseCursor(t, "using A;\nusing Sys$0tem;\nusing C;\nnamespace App { }\n")

	a, err := Check(t.Context(), tree, AtOffset(offset))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if a == nil {
		t.Fatal("Action not applicable")
	}

	if got, want := a.Title(), "Simplify using directives"; got != want {
		t.Errorf("Got title %q, want %q", got, want)
	}

	// The whole sibling set moves, not only the selected directive.
	if diff := cmp.Diff([]string{"A", "System", "C"}, names(a.Directives())); diff != "" {
		t.Errorf("Directives() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"App"}, names(a.Targets())); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}

	if a.Scope() != tree.Root() {
		t.Error("Expected the file scope as source scope")
	}
}

func TestTargetsNested(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "using X;\nnamespace A { namespace B { namespace C { } } }\nnamespace D { }\n")

	a, err := Check(t.Context(), tree, AtRoot())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if a == nil {
		t.Fatal("Action not applicable")
	}

	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, names(a.Targets())); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}

	p := a.Plan()
	if p != a.Plan() {
		t.Error("Expected the plan to be built once")
	}

	if got, want := len(p.Removals()), 1; got != want {
		t.Errorf("Got %d removals, want %d", got, want)
	}

	for _, ap := range p.Appends() {
		if diff := cmp.Diff([]string{"X"}, names(ap.Directives)); diff != "" {
			t.Errorf("Append to %s mismatch (-want +got):\n%s", ap.Namespace.Name(), diff)
		}
	}

	got, err := a.Invoke(t.Context())
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	for ns := range got.Root().DescendantsOf(syntax.KindNamespaceScope) {
		if diff := cmp.Diff([]string{"X"}, names(collect(ns.ChildrenOf(syntax.KindUsingDirective)))); diff != "" {
			t.Errorf("Usings of %s mismatch (-want +got):\n%s", ns.Name(), diff)
		}
	}

	if n := len(collect(got.Root().ChildrenOf(syntax.KindUsingDirective))); n != 0 {
		t.Errorf("Got %d using directives left in file scope", n)
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	const src = "using System;\nnamespace App { }\n"

	tree := testsource.Parse(t, src)

	a, err := Check(t.Context(), tree, AtRoot())
	if err != nil || a == nil {
		t.Fatalf("Check failed: %v, %v", a, err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Check(ctx, tree, AtRoot()); !errors.Is(err, context.Canceled) {
		t.Errorf("Got Check error %v, want %v", err, context.Canceled)
	}

	if _, err := a.Invoke(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Got Invoke error %v, want %v", err, context.Canceled)
	}

	if got := tree.String(); got != src {
		t.Errorf("Original tree modified: %q", got)
	}
}

func TestFindDirective(t *testing.T) {
	t.Parallel()

	tree, offset := testsource.ParseCursor(t, "namespace N { using Sys$0tem.IO; }\n")

	p, ok := FindDirective(tree, syntax.Point(offset))
	if !ok {
		t.Fatal("Directive not found")
	}

	if got, want := p.Node().Name(), "System.IO"; got != want {
		t.Errorf("Got directive %q, want %q", got, want)
	}

	if got, want := p.Parent().Node().Kind(), syntax.KindNamespaceScope; got != want {
		t.Errorf("Got parent kind %s, want %s", got, want)
	}
}
