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

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Plan is a set of removals and namespace appends applied as one edit.
type Plan struct {
	removals []*syntax.Node
	appends  []Append
}

// Append adds directives to the end of the using list of a namespace.
type Append struct {
	Namespace  *syntax.Node
	Directives []*syntax.Node
}

func newPlan(directives, targets []*syntax.Node) *Plan {
	appends := make([]Append, 0, len(targets))
	for _, ns := range targets {
		appends = append(appends, Append{Namespace: ns, Directives: directives})
	}

	return &Plan{removals: directives, appends: appends}
}

// Removals returns the nodes removed by p.
func (p *Plan) Removals() []*syntax.Node { return slices.Clone(p.removals) }

// Appends returns the namespace appends of p.
func (p *Plan) Appends() []Append { return slices.Clone(p.appends) }

// Apply performs p on tree, which must be the tree p was planned for.
func (p *Plan) Apply(ctx context.Context, tree *syntax.Tree) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := syntax.NewEditor(tree)

	for _, d := range p.removals {
		e.RemoveNode(d)
	}

	for _, a := range p.appends {
		e.ReplaceNodeFunc(a.Namespace, func(current *syntax.Node) *syntax.Node {
			return current.AddUsings(a.Directives...)
		})
	}

	return e.Commit(), nil
}
