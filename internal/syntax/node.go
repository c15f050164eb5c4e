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

// Node is an immutable syntax node.
//
// Every node owns the whitespace around it: leading holds the indentation (and blank lines) before the
// node, trailing holds same-line whitespace up to and including the line break. Scopes additionally own
// the text between their header and first child (open) and after their last child (close). Rendering an
// unmodified tree therefore reproduces the parsed source exactly.
type Node struct {
	kind       Kind
	span       Span
	name       string
	leading    string
	text       string
	open       string
	children   []*Node
	close      string
	trailing   string
	fileScoped bool
}

// NewDirective returns a leaf node of the given kind. name is the directive target for using directives.
func NewDirective(kind Kind, span Span, text, name string) *Node {
	return &Node{kind: kind, span: span, text: text, name: name}
}

// NewNamespace returns a namespace scope.
//
// header is the text up to and including the opening brace (or the semicolon of a file-scoped
// namespace), close the text following the last child including the closing brace.
func NewNamespace(span Span, header, name string, fileScoped bool, open string, children []*Node, close string) *Node {
	return &Node{
		kind:       KindNamespaceScope,
		span:       span,
		name:       name,
		text:       header,
		open:       open,
		children:   children,
		close:      close,
		fileScoped: fileScoped,
	}
}

// NewConditional returns a preprocessor block. header is the directive line including its line break,
// close the text following the last child including the terminating #endif, if any.
func NewConditional(span Span, header string, children []*Node, close string) *Node {
	return &Node{
		kind:     KindConditional,
		span:     span,
		text:     header,
		children: children,
		close:    close,
	}
}

// NewFileScope returns a file scope. close is the whitespace after the last child.
func NewFileScope(children []*Node, close string) *Node {
	span := NoSpan
	if len(children) > 0 {
		span = Span{Start: 0, End: children[len(children)-1].span.End}
	}

	return &Node{kind: KindFileScope, span: span, children: children, close: close}
}

// Kind returns the discriminant of n.
func (n *Node) Kind() Kind { return n.kind }

// Span returns the source range of n, excluding leading and trailing whitespace.
func (n *Node) Span() Span { return n.span }

// Name returns the namespace name or the using directive target.
func (n *Node) Name() string { return n.name }

// Text returns the source text of a leaf, or the header of a namespace.
func (n *Node) Text() string { return n.text }

// Leading returns the whitespace preceding n.
func (n *Node) Leading() string { return n.leading }

// Trailing returns the whitespace following n on the same line, including the line break.
func (n *Node) Trailing() string { return n.trailing }

// FileScoped reports whether n is a file-scoped namespace declaration.
func (n *Node) FileScoped() bool { return n.fileScoped }

// NumChildren returns the number of children of n.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the i-th child of n.
func (n *Node) ChildAt(i int) *Node { return n.children[i] }

// WithTrivia returns a copy of n with the given surrounding whitespace.
func (n *Node) WithTrivia(leading, trailing string) *Node {
	c := *n
	c.leading, c.trailing = leading, trailing

	return &c
}

func (n *Node) withChildren(children []*Node) *Node {
	c := *n
	c.children = children

	return &c
}

// Tree is a parsed source file.
type Tree struct {
	root         *Node
	syntaxErrors bool
}

// NewTree returns a tree with the given file scope root.
func NewTree(root *Node, syntaxErrors bool) *Tree {
	return &Tree{root: root, syntaxErrors: syntaxErrors}
}

// Root returns the file scope of t.
func (t *Tree) Root() *Node { return t.root }

// SyntaxErrors reports whether the parser recovered from errors while building t.
func (t *Tree) SyntaxErrors() bool { return t.syntaxErrors }
