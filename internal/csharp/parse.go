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

// Package csharp builds [syntax.Tree] values from C# source using the tree-sitter C# grammar.
package csharp

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	grammar "github.com/smacker/go-tree-sitter/csharp"

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// ErrParse is returned when the tree-sitter parser produces no tree.
var ErrParse = errors.New("can't parse C# source")

// Parser parses C# source files. A Parser must not be used concurrently.
type Parser struct {
	parser *sitter.Parser
}

// NewParser returns a parser for C#. Call [Parser.Close] to release it.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(grammar.GetLanguage())

	return &Parser{parser: p}
}

// Close releases the resources held by p.
func (p *Parser) Close() {
	p.parser.Close()
}

// Parse builds the syntax tree of src.
//
// Syntax errors do not fail the parse, they are reported by [syntax.Tree.SyntaxErrors].
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, ErrParse
	}

	b := builder{src: src}

	return syntax.NewTree(b.file(root), root.HasError()), nil
}

// Parse builds the syntax tree of src with a fresh [Parser].
func Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	p := NewParser()
	defer p.Close()

	return p.Parse(ctx, src)
}
