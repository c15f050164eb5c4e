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

import (
	"iter"
	"slices"
)

// Children returns an iterator over the direct children of n.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildrenOf returns an iterator over the direct children of n with the given kind.
func (n *Node) ChildrenOf(kind Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if c.kind == kind && !yield(c) {
				return
			}
		}
	}
}

// Descendants returns an iterator over all nodes below n in depth-first preorder, excluding n itself.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	for _, c := range n.children {
		if !yield(c) || !c.preorder(yield) {
			return false
		}
	}

	return true
}

// DescendantsOf returns an iterator over all nodes below n with the given kind, in depth-first preorder.
func (n *Node) DescendantsOf(kind Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range n.Descendants() {
			if d.kind == kind && !yield(d) {
				return
			}
		}
	}
}

// Path is a chain of nodes from a file scope down to some node.
//
// Nodes do not know their parents, a Path stands in for the ancestor links.
type Path []*Node

// Node returns the last node of p, or nil for an empty path.
func (p Path) Node() *Node {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}

// Parent returns the path to the parent of p's node.
func (p Path) Parent() Path {
	if len(p) < 2 {
		return nil
	}

	return p[:len(p)-1]
}

// Ancestors returns an iterator walking upward from p's node (included) to the root.
func (p Path) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for i := len(p) - 1; i >= 0; i-- {
			if !yield(p[i]) {
				return
			}
		}
	}
}

// Enclosing returns the path to the innermost node of the given kind on p, including p's node.
func (p Path) Enclosing(kind Kind) (Path, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].kind == kind {
			return p[:i+1], true
		}
	}

	return nil, false
}

// FindNode returns the path to the innermost node whose span contains span.
// The path consists of the root only when no child contains span.
func (t *Tree) FindNode(span Span) Path {
	path := Path{t.root}

	for n := t.root; ; {
		next := (*Node)(nil)

		for _, c := range n.children {
			if c.span.Contains(span) {
				next = c

				break
			}
		}

		if next == nil {
			return path
		}

		path = append(path, next)
		n = next
	}
}

// PathTo returns the path from the root of t to target, comparing node identity.
func (t *Tree) PathTo(target *Node) (Path, bool) {
	var find func(p Path) (Path, bool)

	find = func(p Path) (Path, bool) {
		n := p.Node()
		if n == target {
			return slices.Clone(p), true
		}

		for _, c := range n.children {
			if found, ok := find(append(p, c)); ok {
				return found, true
			}
		}

		return nil, false
	}

	return find(Path{t.root})
}
