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

import "strings"

// Editor collects removals and replacements against a tree and applies them in one step.
//
// Nodes are identified by pointer, so edits must refer to nodes of the tree the editor was created for.
// The original tree is never modified.
type Editor struct {
	tree     *Tree
	removed  map[*Node]struct{}
	replaced map[*Node][]func(*Node) *Node
}

// NewEditor starts an edit session on t.
func NewEditor(t *Tree) *Editor {
	return &Editor{
		tree:     t,
		removed:  make(map[*Node]struct{}),
		replaced: make(map[*Node][]func(*Node) *Node),
	}
}

// RemoveNode schedules the removal of n together with its surrounding whitespace.
func (e *Editor) RemoveNode(n *Node) {
	e.removed[n] = struct{}{}
}

// ReplaceNode schedules the replacement of old with replacement.
//
// Edits scheduled for descendants of old are discarded, use [Editor.ReplaceNodeFunc] to keep them.
func (e *Editor) ReplaceNode(old, replacement *Node) {
	e.ReplaceNodeFunc(old, func(*Node) *Node { return replacement })
}

// ReplaceNodeFunc schedules a replacement of old computed from its current state, after all edits
// below old have been applied. Multiple replacements of the same node are applied in order.
func (e *Editor) ReplaceNodeFunc(old *Node, replace func(current *Node) *Node) {
	e.replaced[old] = append(e.replaced[old], replace)
}

// Commit applies all scheduled edits and returns the new tree.
func (e *Editor) Commit() *Tree {
	return NewTree(e.rebuild(e.tree.root), e.tree.syntaxErrors)
}

func (e *Editor) rebuild(n *Node) *Node {
	var (
		children []*Node
		changed  bool
		head     = true // only removed children so far
	)

	for _, c := range n.children {
		if _, ok := e.removed[c]; ok {
			changed = true

			continue
		}

		nc := e.rebuild(c)

		// Removing the first lines of a file leaves nothing to indent against.
		if head && changed && n.kind == KindFileScope && strings.TrimSpace(nc.leading) == "" {
			nc = nc.WithTrivia("", nc.trailing)
		}

		head = false

		if nc != c {
			changed = true
		}

		children = append(children, nc)
	}

	current := n
	if changed {
		current = n.withChildren(children)
	}

	for _, replace := range e.replaced[n] {
		current = replace(current)
	}

	return current
}
