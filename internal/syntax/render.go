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

// String renders n including its surrounding whitespace.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)

	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString(n.leading) // ignore error
	b.WriteString(n.text)    // ignore error
	b.WriteString(n.open)    // ignore error

	for _, c := range n.children {
		c.render(b)
	}

	b.WriteString(n.close)    // ignore error
	b.WriteString(n.trailing) // ignore error
}

// String renders the source text of t.
func (t *Tree) String() string {
	return t.root.String()
}

// Bytes renders the source text of t.
func (t *Tree) Bytes() []byte {
	return []byte(t.String())
}
