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

// Package run applies the using directive refactoring to single source files.
package run

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/config"
	"fillmore-labs.com/usingsimplifier/internal/csharp"
	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Skip explains why a file was not refactored.
type Skip uint8

const (
	// NotSkipped means the file was analyzed.
	NotSkipped Skip = iota

	// SkipGenerated marks generated files.
	SkipGenerated

	// SkipSyntaxErrors marks files with syntax errors.
	SkipSyntaxErrors

	// SkipNoLint marks files with a nolint directive.
	SkipNoLint
)

func (s Skip) String() string {
	switch s {
	case NotSkipped:
		return "none"
	case SkipGenerated:
		return "generated"
	case SkipSyntaxErrors:
		return "syntax errors"
	case SkipNoLint:
		return "nolint"
	default:
		return "unknown"
	}
}

// Result is the outcome of refactoring one file.
type Result struct {
	// Name is the file name.
	Name string

	// Source is the original file content.
	Source []byte

	// Skipped is set when the file was not analyzed.
	Skipped Skip

	// Tree is the parsed source, nil when the file was skipped before parsing.
	Tree *syntax.Tree

	// Action is the applicable refactoring, or nil.
	Action *relocate.Action

	// Output is the refactored tree when Action is not nil.
	Output *syntax.Tree
}

// Applicable reports whether the refactoring changed the file.
func (r Result) Applicable() bool {
	return r.Action != nil && r.Output != nil
}

// NewSource returns the refactored file content, or the original when nothing applies.
func (r Result) NewSource() []byte {
	if !r.Applicable() {
		return r.Source
	}

	return r.Output.Bytes()
}

// File runs the refactoring at trigger on the source file name.
//
// A nil parser uses a fresh [csharp.Parser]. The only errors are parse failures and cancellation.
func (o *Options) File(ctx context.Context, parser *csharp.Parser, name string, src []byte, trigger relocate.Trigger) (Result, error) {
	defer trace.StartRegion(ctx, "File").End()

	log := o.logger().With(slog.String("file", name))
	result := Result{Name: name, Source: src}

	if !o.Behavior.Enabled(config.IncludeGenerated) && astutil.IsGenerated(name, src) {
		return skip(ctx, log, result, SkipGenerated), nil
	}

	tree, err := parse(ctx, parser, src)
	if err != nil {
		return result, err
	}

	result.Tree = tree

	if tree.SyntaxErrors() && !o.Behavior.Enabled(config.AllowSyntaxErrors) {
		return skip(ctx, log, result, SkipSyntaxErrors), nil
	}

	if astutil.FileHasNoLint(tree.Root()) {
		return skip(ctx, log, result, SkipNoLint), nil
	}

	action, err := relocate.Check(ctx, tree, trigger)
	if err != nil || action == nil {
		return result, err
	}

	output, err := action.Invoke(ctx)
	if err != nil {
		return result, err
	}

	log.DebugContext(ctx, "Relocating using directives",
		slog.Int("directives", len(action.Directives())),
		slog.Int("namespaces", len(action.Targets())))

	result.Action, result.Output = action, output

	return result, nil
}

func parse(ctx context.Context, parser *csharp.Parser, src []byte) (*syntax.Tree, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	if parser == nil {
		return csharp.Parse(ctx, src)
	}

	return parser.Parse(ctx, src)
}

func skip(ctx context.Context, log *slog.Logger, result Result, reason Skip) Result {
	log.DebugContext(ctx, "Skipping file", slog.String("reason", reason.String()))
	result.Skipped = reason

	return result
}
