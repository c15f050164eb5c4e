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

package relocate

import (
	"context"
	"slices"
	"sync"

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Title is the human-readable label of the refactoring.
const Title = "Simplify using directives"

// Action is an applicable refactoring. The edit plan is built on first use.
type Action struct {
	tree       *syntax.Tree
	scope      *syntax.Node
	directives []*syntax.Node
	targets    []*syntax.Node
	plan       func() *Plan
}

// Check decides whether the refactoring applies to tree at trigger.
//
// It returns a nil [Action] without error when the refactoring is not applicable: no using directive
// at the trigger, the directive is already inside a namespace, or there is no namespace to move into.
// The only error is the cancellation of ctx.
func Check(ctx context.Context, tree *syntax.Tree, trigger Trigger) (*Action, error) {
	candidate, ok := trigger.candidate(tree)
	if !ok {
		return nil, nil
	}

	if _, nested := candidate.Enclosing(syntax.KindNamespaceScope); nested {
		return nil, nil
	}

	// Directives inside a preprocessor block stay where they are.
	scope := candidate.Parent().Node()
	if scope == nil || !scope.Kind().Scope() {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Every namespace below the scope, nested ones included.
	targets := slices.Collect(scope.DescendantsOf(syntax.KindNamespaceScope))
	if len(targets) == 0 {
		return nil, nil
	}

	directives := slices.Collect(scope.ChildrenOf(syntax.KindUsingDirective))

	a := &Action{
		tree:       tree,
		scope:      scope,
		directives: directives,
		targets:    targets,
	}
	a.plan = sync.OnceValue(func() *Plan { return newPlan(directives, targets) })

	return a, nil
}

// Title returns the label of the action.
func (a *Action) Title() string { return Title }

// Tree returns the tree the action was computed on.
func (a *Action) Tree() *syntax.Tree { return a.tree }

// Scope returns the scope the directives are moved out of.
func (a *Action) Scope() *syntax.Node { return a.scope }

// Directives returns the using directives to relocate, in source order.
func (a *Action) Directives() []*syntax.Node { return slices.Clone(a.directives) }

// Targets returns the namespaces receiving the directives, in source order.
func (a *Action) Targets() []*syntax.Node { return slices.Clone(a.targets) }

// Plan returns the edit plan of the action.
func (a *Action) Plan() *Plan { return a.plan() }

// Invoke applies the action to the tree it was computed on and returns the new tree.
func (a *Action) Invoke(ctx context.Context) (*syntax.Tree, error) {
	return a.Plan().Apply(ctx, a.tree)
}
