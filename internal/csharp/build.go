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

package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Node types of the tree-sitter C# grammar.
const (
	typeUsingDirective      = "using_directive"
	typeExternAlias         = "extern_alias_directive"
	typeNamespace           = "namespace_declaration"
	typeFileScopedNamespace = "file_scoped_namespace_declaration"
	typeDeclarationList     = "declaration_list"
	typeComment             = "comment"
	typePreprocIf           = "preproc_if"
	typePreprocElif         = "preproc_elif"
	typePreprocElse         = "preproc_else"
	tokenOpenBrace          = "{"
	tokenCloseBrace         = "}"
	tokenSemicolon          = ";"
	keywordGlobal           = "global"
	keywordUsing            = "using"
	keywordNamespace        = "namespace"
	keywordExtern           = "extern"
	keywordAlias            = "alias"
	directiveEndif          = "#endif"
)

// builder converts the concrete syntax tree into [syntax.Node] values.
type builder struct {
	src []byte
}

// item is a converted node and its source extent, before whitespace is distributed.
type item struct {
	node       *syntax.Node
	start, end int
	comment    bool
}

func (b *builder) file(root *sitter.Node) *syntax.Node {
	_, nodes, close := b.arrange(b.items(children(root)), 0, len(b.src), false)

	return syntax.NewFileScope(nodes, close)
}

// items converts a sequence of sibling declarations.
//
// A file-scoped namespace extends to the end of its scope, so all following siblings become its members.
func (b *builder) items(nodes []*sitter.Node) []item {
	items := make([]item, 0, len(nodes))

	for i, n := range nodes {
		switch n.Type() {
		case typeFileScopedNamespace:
			return append(items, b.fileScopedNamespace(n, nodes[i+1:]))

		case typeNamespace:
			items = append(items, b.namespace(n))

		case typeUsingDirective:
			items = append(items, b.using(n))

		case typeExternAlias:
			items = append(items, b.leaf(n, syntax.KindExternAlias, ""))

		case typePreprocIf, typePreprocElif, typePreprocElse:
			items = append(items, b.conditional(n))

		case typeComment:
			it := b.leaf(n, syntax.KindOpaque, "")
			it.comment = true
			items = append(items, it)

		default:
			// Inside namespace bodies the grammar reads "extern alias X;" as a field declaration.
			kind := syntax.KindOpaque
			if externAlias(b.text(int(n.StartByte()), int(n.EndByte()))) {
				kind = syntax.KindExternAlias
			}

			items = append(items, b.leaf(n, kind, ""))
		}
	}

	return items
}

func (b *builder) leaf(n *sitter.Node, kind syntax.Kind, name string) item {
	start, end := int(n.StartByte()), int(n.EndByte())
	span := syntax.Span{Start: start, End: end}

	return item{node: syntax.NewDirective(kind, span, b.text(start, end), name), start: start, end: end}
}

func (b *builder) using(n *sitter.Node) item {
	text := b.text(int(n.StartByte()), int(n.EndByte()))

	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(text), tokenSemicolon))
	if len(fields) > 0 && fields[0] == keywordGlobal {
		// global usings apply to the whole compilation and can't be nested
		return b.leaf(n, syntax.KindOpaque, directiveTarget(fields))
	}

	return b.leaf(n, syntax.KindUsingDirective, directiveTarget(fields))
}

func externAlias(text string) bool {
	fields := strings.Fields(text)

	return len(fields) > 1 && fields[0] == keywordExtern && fields[1] == keywordAlias
}

// directiveTarget returns the imported name of a using directive, including static and alias parts.
func directiveTarget(fields []string) string {
	for len(fields) > 0 && (fields[0] == keywordGlobal || fields[0] == keywordUsing) {
		fields = fields[1:]
	}

	return strings.Join(fields, " ")
}

func (b *builder) namespace(n *sitter.Node) item {
	start, end := int(n.StartByte()), int(n.EndByte())

	var body *sitter.Node

	for _, c := range children(n) {
		if c.Type() == typeDeclarationList {
			body = c

			break
		}
	}

	if body == nil {
		return b.leaf(n, syntax.KindOpaque, "")
	}

	var (
		lbrace, rbrace *sitter.Node
		members        []*sitter.Node
	)

	for _, c := range children(body) {
		switch {
		case c.Type() == tokenOpenBrace && lbrace == nil:
			lbrace = c

		case c.Type() == tokenCloseBrace:
			rbrace = c

		default:
			members = append(members, c)
		}
	}

	if lbrace == nil {
		return b.leaf(n, syntax.KindOpaque, "")
	}

	openAt, closeAt := int(lbrace.EndByte()), int(body.EndByte())
	if rbrace != nil {
		closeAt = int(rbrace.StartByte())
	}

	header := b.text(start, openAt)
	open, nodes, close := b.arrange(b.items(members), openAt, closeAt, true)
	close += b.text(closeAt, end)

	span := syntax.Span{Start: start, End: end}
	ns := syntax.NewNamespace(span, header, namespaceName(header), false, open, nodes, close)

	return item{node: ns, start: start, end: end}
}

func (b *builder) fileScopedNamespace(n *sitter.Node, following []*sitter.Node) item {
	start, end := int(n.StartByte()), int(n.EndByte())

	var (
		semicolon *sitter.Node
		members   []*sitter.Node
	)

	for _, c := range children(n) {
		if semicolon == nil {
			if c.Type() == tokenSemicolon {
				semicolon = c
			}

			continue
		}

		members = append(members, c)
	}

	if semicolon == nil {
		return b.leaf(n, syntax.KindOpaque, "")
	}

	items := b.items(append(members, following...))
	if len(items) > 0 {
		end = max(end, items[len(items)-1].end)
	}

	openAt := int(semicolon.EndByte())
	header := b.text(start, openAt)
	open, nodes, close := b.arrange(items, openAt, end, true)

	span := syntax.Span{Start: start, End: end}
	ns := syntax.NewNamespace(span, header, namespaceName(header), true, open, nodes, close)

	return item{node: ns, start: start, end: end}
}

// conditional converts a preprocessor #if, #elif or #else block. Its members are converted like the
// members of the enclosing scope, so namespaces inside stay reachable.
func (b *builder) conditional(n *sitter.Node) item {
	start, end := int(n.StartByte()), int(n.EndByte())

	eol := strings.IndexByte(b.text(start, end), '\n')
	if eol < 0 {
		return b.leaf(n, syntax.KindOpaque, "")
	}

	headerEnd, closeAt := start+eol+1, end

	var members []*sitter.Node

	for _, c := range children(n) {
		cstart := int(c.StartByte())

		switch {
		case cstart < headerEnd || cstart >= closeAt:
			continue

		case c.Type() == directiveEndif || strings.HasPrefix(b.text(cstart, int(c.EndByte())), directiveEndif):
			closeAt = cstart

		default:
			members = append(members, c)
		}
	}

	header := b.text(start, headerEnd)
	_, nodes, close := b.arrange(b.items(members), headerEnd, closeAt, false)
	close += b.text(closeAt, end)

	span := syntax.Span{Start: start, End: end}

	return item{node: syntax.NewConditional(span, header, nodes, close), start: start, end: end}
}

// namespaceName extracts the qualified name from a namespace header.
func namespaceName(header string) string {
	name := strings.TrimSpace(header)
	name = strings.TrimPrefix(name, keywordNamespace)
	name = strings.TrimSuffix(name, tokenOpenBrace)
	name = strings.TrimSuffix(name, tokenSemicolon)

	return strings.Join(strings.Fields(name), "")
}

// arrange distributes the whitespace of [from, to) around items.
//
// Whitespace after an item up to and including the next line break trails that item, the rest leads
// the following item. With hasOpen the same split applies to the text before the first item.
// A comment on the same line as a directive is part of the directive's trailing text.
func (b *builder) arrange(items []item, from, to int, hasOpen bool) (open string, nodes []*syntax.Node, close string) {
	next := to
	if len(items) > 0 {
		next = items[0].start
	}

	gap := b.text(from, next)
	if hasOpen {
		open, gap = splitLine(gap)
	}

	nodes = make([]*syntax.Node, 0, len(items))

	for i := 0; i < len(items); i++ {
		it, leading := items[i], gap

		if i+1 < len(items) && b.trailingComment(it, items[i+1]) {
			i++
		}

		next = to
		if i+1 < len(items) {
			next = items[i+1].start
		}

		var trailing string
		trailing, gap = splitLine(b.text(it.end, next))

		nodes = append(nodes, it.node.WithTrivia(leading, trailing))
	}

	return open, nodes, gap
}

// trailingComment reports whether c is a comment that starts and ends on the last line of directive it.
func (b *builder) trailingComment(it, c item) bool {
	switch it.node.Kind() {
	case syntax.KindUsingDirective, syntax.KindExternAlias:
		return c.comment && !strings.Contains(strings.TrimRight(b.text(it.end, c.end), "\r\n"), "\n")

	default:
		return false
	}
}

func (b *builder) text(start, end int) string {
	if start >= end {
		return ""
	}

	return string(b.src[start:end])
}

// splitLine splits s after the first line break. Without a line break everything goes to rest.
func splitLine(s string) (line, rest string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1], s[i+1:]
	}

	return "", s
}

func children(n *sitter.Node) []*sitter.Node {
	count := int(n.ChildCount())
	nodes := make([]*sitter.Node, 0, count)

	for i := range count {
		if c := n.Child(i); c != nil {
			nodes = append(nodes, c)
		}
	}

	return nodes
}
