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
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const contextLines = 3

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// UnifiedDiff renders the changes from old to new as a unified diff with three lines of context.
// It returns an empty string when old and new are equal.
func UnifiedDiff(name string, old, new []byte) string {
	lines := splitLines(lineDiffs(string(old), string(new)))

	oldLine, newLine := make([]int, len(lines)+1), make([]int, len(lines)+1)
	for i, l := range lines {
		oldLine[i+1], newLine[i+1] = oldLine[i], newLine[i]
		if l.op != diffmatchpatch.DiffInsert {
			oldLine[i+1]++
		}

		if l.op != diffmatchpatch.DiffDelete {
			newLine[i+1]++
		}
	}

	var b strings.Builder

	for i := 0; i < len(lines); {
		c := nextChange(lines, i)
		if c < 0 {
			break
		}

		start, end := max(c-contextLines, i), c+1
		for {
			n := nextChange(lines, end)
			if n < 0 || n-end > 2*contextLines {
				break
			}

			end = n + 1
		}

		end = min(end+contextLines, len(lines))

		if b.Len() == 0 {
			fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", name, name)
		}

		fmt.Fprintf(&b, "@@ -%s +%s @@\n",
			hunkRange(oldLine[start], oldLine[end]-oldLine[start]),
			hunkRange(newLine[start], newLine[end]-newLine[start]))

		for _, l := range lines[start:end] {
			switch l.op {
			case diffmatchpatch.DiffDelete:
				b.WriteByte('-')
			case diffmatchpatch.DiffInsert:
				b.WriteByte('+')
			default:
				b.WriteByte(' ')
			}

			b.WriteString(l.text)

			if !strings.HasSuffix(l.text, "\n") {
				b.WriteString("\n\\ No newline at end of file\n")
			}
		}

		i = end
	}

	return b.String()
}

func splitLines(diffs []diffmatchpatch.Diff) []diffLine {
	var lines []diffLine

	for _, d := range diffs {
		for line := range strings.Lines(d.Text) {
			lines = append(lines, diffLine{op: d.Type, text: line})
		}
	}

	return lines
}

func nextChange(lines []diffLine, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i].op != diffmatchpatch.DiffEqual {
			return i
		}
	}

	return -1
}

func hunkRange(start, count int) string {
	switch count {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return strconv.Itoa(start+1) + "," + strconv.Itoa(count)
	}
}
