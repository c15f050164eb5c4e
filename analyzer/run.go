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

package analyzer

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/config"
	"fillmore-labs.com/usingsimplifier/internal/csharp"
	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/report"
	"fillmore-labs.com/usingsimplifier/internal/run"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// runOptions represent configuration options for the usingsimplifier analyzer.
type runOptions struct {
	// behavior holds behavioral switches.
	behavior config.Behavior

	// logger receives debug output, nil discards it.
	logger *slog.Logger
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{behavior: config.DefaultBehavior()}
}

// pipeline returns the per-file options for a run.
func (r *runOptions) pipeline() *run.Options {
	opts := run.DefaultOptions()
	opts.Behavior = r.behavior

	if r.logger != nil {
		opts.Logger = r.logger
	}

	return opts
}

// run executes the usingsimplifier analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	if testVariant(p) {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "UsingSimplifier")
	defer task.End()

	var names []string

	for _, dir := range sourceDirs(p) {
		matches, err := filepath.Glob(filepath.Join(dir, "*.cs"))
		if err != nil {
			return nil, fmt.Errorf("usingsimplifier: %w", err)
		}

		names = append(names, matches...)
	}

	if len(names) == 0 {
		return nil, nil
	}

	parser := csharp.NewParser()
	defer parser.Close()

	opts := r.pipeline()

	for _, name := range names {
		if err := checkFile(ctx, p, parser, opts, name); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// checkFile reports the diagnostic of a single C# source file.
func checkFile(ctx context.Context, p *analysis.Pass, parser *csharp.Parser, opts *run.Options, name string) error {
	defer trace.StartRegion(ctx, "CheckFile").End()

	src, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("usingsimplifier: %w", err)
	}

	currentFile := astutil.NewCurrentFile(p.Fset, name, src)

	result, err := opts.File(ctx, parser, name, src, relocate.AtRoot())
	if err != nil {
		astutil.InternalError(p, currentFile, syntax.NoSpan, "Can't process %s: %v", filepath.Base(name), err)

		return nil
	}

	if diagnostic, ok := report.Diagnostic(currentFile, result); ok {
		p.Report(diagnostic)
	}

	return nil
}

// sourceDirs returns the sorted directories containing the Go files of the pass.
func sourceDirs(p *analysis.Pass) []string {
	dirs := make([]string, 0, 1)

	for _, f := range p.Files {
		file := p.Fset.File(f.Pos())
		if file == nil {
			continue
		}

		dirs = append(dirs, filepath.Dir(file.Name()))
	}

	slices.Sort(dirs)

	return slices.Compact(dirs)
}

// testVariant reports whether the pass analyzes a test variant of a package, so every directory is
// only checked once.
//
// Directories with regular Go files are checked by the package itself. Directories holding only test
// files are checked by the in-package test variant, or by the external test package if there is none.
func testVariant(p *analysis.Pass) bool {
	if p.Pkg != nil && strings.HasSuffix(p.Pkg.Path(), ".test") {
		return true
	}

	tests := false

	for _, f := range p.Files {
		if file := p.Fset.File(f.Pos()); file != nil && isTestFile(file.Name()) {
			tests = true

			break
		}
	}

	if !tests {
		return false
	}

	external := p.Pkg != nil && strings.HasSuffix(p.Pkg.Name(), "_test")

	for _, dir := range sourceDirs(p) {
		sources, internalTests, err := goFiles(dir)
		if err != nil || sources || external && internalTests {
			return true
		}
	}

	return false
}

// goFiles reports whether dir contains regular Go files and test files of the package under test.
func goFiles(dir string) (sources, internalTests bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, false, err
	}

	fset := token.NewFileSet()

	for _, e := range entries {
		name := e.Name()

		switch {
		case e.IsDir() || filepath.Ext(name) != ".go":
			continue

		case !isTestFile(name):
			sources = true

		case !internalTests:
			f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
			if err != nil {
				return false, false, err
			}

			internalTests = !strings.HasSuffix(f.Name.Name, "_test")
		}
	}

	return sources, internalTests, nil
}

func isTestFile(name string) bool {
	return strings.HasSuffix(name, "_test.go")
}
