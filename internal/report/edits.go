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

package report

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Edit replaces the bytes in Span with NewText.
type Edit struct {
	Span    syntax.Span
	NewText string
}

// Edits computes line-granular edits that turn old into new. Edits are ordered and do not overlap.
func Edits(old, new []byte) []Edit {
	var edits []Edit

	offset := 0
	for _, d := range lineDiffs(string(old), string(new)) {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			offset += len(d.Text)

		case diffmatchpatch.DiffDelete:
			end := offset + len(d.Text)
			if n := len(edits); n > 0 && edits[n-1].Span.End == offset {
				edits[n-1].Span.End = end
			} else {
				edits = append(edits, Edit{Span: syntax.Span{Start: offset, End: end}})
			}

			offset = end

		case diffmatchpatch.DiffInsert:
			if n := len(edits); n > 0 && edits[n-1].Span.End == offset {
				edits[n-1].NewText += d.Text
			} else {
				edits = append(edits, Edit{Span: syntax.Point(offset), NewText: d.Text})
			}
		}
	}

	return edits
}

// TextEdits converts the edits between old and new into [analysis.TextEdit] values positioned in file.
func TextEdits(file astutil.CurrentFile, old, new []byte) []analysis.TextEdit {
	edits := Edits(old, new)
	if len(edits) == 0 {
		return nil
	}

	textEdits := make([]analysis.TextEdit, 0, len(edits))
	for _, e := range edits {
		rng := file.Range(e.Span)
		textEdits = append(textEdits, analysis.TextEdit{Pos: rng.Pos(), End: rng.End(), NewText: []byte(e.NewText)})
	}

	return textEdits
}

// lineDiffs returns a diff of old and new where every fragment consists of whole lines.
func lineDiffs(old, new string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToRunes(old, new)
	diffs := dmp.DiffMainRunes(a, b, false)

	return dmp.DiffCharsToLines(diffs, lines)
}
