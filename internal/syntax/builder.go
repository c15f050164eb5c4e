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
	"slices"
	"strings"
)

const indentUnit = "    "

// AddUsings returns a copy of the namespace n with directives appended to its using list.
//
// The using list ends after the last extern alias or using directive of n. Appended directives take the
// indentation of the entry they follow, or of the first member when n has no usings, and keep their
// own line break. Copies report [NoSpan].
func (n *Node) AddUsings(directives ...*Node) *Node {
	if n.kind != KindNamespaceScope || len(directives) == 0 {
		return n
	}

	at := 0

	for i, c := range n.children {
		if c.kind == KindUsingDirective || c.kind == KindExternAlias {
			at = i + 1
		}
	}

	indent := n.usingIndent(at)

	added := make([]*Node, 0, len(directives))
	for _, d := range directives {
		c := d.WithTrivia(indent, lineEnd(d.trailing))
		c.span = NoSpan // not parsed at this position
		added = append(added, c)
	}

	return n.withChildren(slices.Insert(slices.Clone(n.children), at, added...))
}

// usingIndent determines the leading whitespace for a directive inserted at index at.
func (n *Node) usingIndent(at int) string {
	switch {
	case at > 0:
		return indentation(n.children[at-1].leading)

	case len(n.children) > 0:
		return indentation(n.children[0].leading)

	case strings.Contains(n.open, "\n"):
		return indentation(n.leading) + indentUnit

	default:
		return " "
	}
}

// indentation returns the last line of leading whitespace.
func indentation(leading string) string {
	if i := strings.LastIndexByte(leading, '\n'); i >= 0 {
		return leading[i+1:]
	}

	return leading
}

// lineEnd returns trailing when it ends the line, or a line break otherwise.
func lineEnd(trailing string) string {
	if strings.HasSuffix(trailing, "\n") {
		return trailing
	}

	return trailing + "\n"
}
