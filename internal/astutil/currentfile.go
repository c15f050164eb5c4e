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

// Package astutil tracks the C# source file being processed and its position information.
package astutil

import (
	"fmt"
	"go/token"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

const usingsimplifier = "usingsimplifier"

// CurrentFile holds the position information and generated status of one source file.
type CurrentFile struct {
	handle    *token.File
	generated bool
}

// NewCurrentFile registers the source file name with fset.
func NewCurrentFile(fset *token.FileSet, name string, src []byte) CurrentFile {
	if fset == nil {
		return CurrentFile{}
	}

	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent(src)

	return CurrentFile{handle: handle, generated: IsGenerated(name, src)}
}

// Valid returns true if the [CurrentFile] has a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the current file is generated code.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Handle returns the [token.File] of the current file.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

// Range converts a source span into a [Range]. Invalid spans map to the start of the file.
func (c CurrentFile) Range(span syntax.Span) Range {
	if !span.Valid() || span.End > c.handle.Size() {
		pos := c.handle.Pos(0)

		return Range{pos, pos}
	}

	return Range{c.handle.Pos(span.Start), c.handle.Pos(span.End)}
}

// Position returns the line and column of a byte offset.
func (c CurrentFile) Position(offset int) token.Position {
	return c.handle.PositionFor(c.handle.Pos(offset), false)
}

// Range is a position range in a [token.FileSet]. It implements [analysis.Range].
type Range struct {
	pos, end token.Pos
}

// Pos returns the start position.
func (r Range) Pos() token.Pos { return r.pos }

// End returns the end position.
func (r Range) End() token.Pos { return r.end }

var generatedSuffixes = [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"}

var generatedPattern = regexp.MustCompile(`(?i)<auto-?generated`)

// IsGenerated reports whether a file is generated code, judged by its name or an <auto-generated>
// marker in its leading comments.
func IsGenerated(name string, src []byte) bool {
	base := strings.ToLower(filepath.Base(name))
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	for line := range strings.Lines(string(src)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "/*") && !strings.HasPrefix(line, "*") {
			return false // end of header
		}

		if generatedPattern.MatchString(line) {
			return true
		}
	}

	return false
}

// FileHasNoLint reports whether a file-scope comment before the first namespace contains a
// `//nolint:usingsimplifier` directive. Comments following a directive on the same line count too.
func FileHasNoLint(root *syntax.Node) bool {
	for c := range root.Children() {
		switch c.Kind() {
		case syntax.KindNamespaceScope:
			return false

		case syntax.KindOpaque:
			if CommentHasNoLint(c.Text()) {
				return true
			}

		case syntax.KindUsingDirective, syntax.KindExternAlias:
			if CommentHasNoLint(strings.TrimSpace(c.Trailing())) {
				return true
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment text contains a `//nolint:usingsimplifier` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == usingsimplifier || l == "all" {
			return true
		}
	}

	return false
}

// InternalError reports an internal error diagnostic at span of file.
// These errors indicate bugs in the refactoring rather than issues in the user's code.
func InternalError(p *analysis.Pass, file CurrentFile, span syntax.Span, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	rng := file.Range(span)
	p.Report(analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Message: string(msg)})
}
