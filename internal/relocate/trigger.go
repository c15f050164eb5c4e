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

import "fillmore-labs.com/usingsimplifier/internal/syntax"

// Trigger identifies where the refactoring was requested.
type Trigger struct {
	span syntax.Span
	root bool
}

// AtRoot returns a trigger offering the refactoring whenever the file scope contains using directives,
// regardless of the cursor position.
func AtRoot() Trigger {
	return Trigger{span: syntax.NoSpan, root: true}
}

// At returns a trigger offering the refactoring only when span lies inside a using directive.
func At(span syntax.Span) Trigger {
	return Trigger{span: span}
}

// AtOffset returns a trigger for a cursor at the given byte offset.
func AtOffset(offset int) Trigger {
	return At(syntax.Point(offset))
}

// Root reports whether t is a root-level trigger.
func (t Trigger) Root() bool { return t.root }

// Span returns the selection of a point trigger.
func (t Trigger) Span() syntax.Span { return t.span }

// FindDirective returns the path to the using directive enclosing span, walking upward from the
// innermost node containing span.
func FindDirective(tree *syntax.Tree, span syntax.Span) (syntax.Path, bool) {
	return tree.FindNode(span).Enclosing(syntax.KindUsingDirective)
}

// firstRootDirective returns the path to the first using directive directly inside the file scope.
func firstRootDirective(tree *syntax.Tree) (syntax.Path, bool) {
	root := tree.Root()
	for d := range root.ChildrenOf(syntax.KindUsingDirective) {
		return syntax.Path{root, d}, true
	}

	return nil, false
}

// candidate locates the directive the trigger refers to.
func (t Trigger) candidate(tree *syntax.Tree) (syntax.Path, bool) {
	if t.root {
		return firstRootDirective(tree)
	}

	return FindDirective(tree, t.span)
}
