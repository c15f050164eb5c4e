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

// Package report turns refactoring results into analysis diagnostics, text edits and diffs.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/run"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Code identifies diagnostics of movable using directives.
const Code = "us:mov"

// Diagnostic builds the diagnostic for an applicable result, including the suggested fix.
//
// It returns false when the refactoring does not apply to the result.
func Diagnostic(file astutil.CurrentFile, result run.Result) (analysis.Diagnostic, bool) {
	if !result.Applicable() {
		return analysis.Diagnostic{}, false
	}

	action := result.Action
	directives, targets := action.Directives(), action.Targets()

	span := syntax.Span{Start: directives[0].Span().Start, End: directives[len(directives)-1].Span().End}
	rng := file.Range(span)

	related := make([]analysis.RelatedInformation, 0, len(targets))
	for _, target := range targets {
		r := file.Range(target.Span())
		related = append(related, analysis.RelatedInformation{
			Pos:     r.Pos(),
			End:     r.End(),
			Message: fmt.Sprintf("Into namespace '%s'", target.Name()),
		})
	}

	diagnostic := analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: Code,
		Message:  Message(action),
		Related:  related,
	}

	if edits := TextEdits(file, result.Source, result.NewSource()); len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: action.Title(), TextEdits: edits}}
	}

	return diagnostic, true
}

// Message describes the action, e.g. "Using directives 'A' and 'B' can be moved into namespace 'N' (us:mov)".
func Message(action *relocate.Action) string {
	directives, targets := names(action.Directives()), names(action.Targets())

	subject := "Using directive"
	if len(directives) > 1 {
		subject = "Using directives"
	}

	object := "namespace"
	if len(targets) > 1 {
		object = "namespaces"
	}

	return fmt.Sprintf("%s %s can be moved into %s %s (%s)",
		subject, concatNames(directives), object, concatNames(targets), Code)
}

func names(nodes []*syntax.Node) []string {
	result := make([]string, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.Name())
	}

	return result
}

// concatNames formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
