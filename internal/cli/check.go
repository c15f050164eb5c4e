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

package cli

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"github.com/spf13/cobra"

	"fillmore-labs.com/usingsimplifier/internal/astutil"
	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/report"
	"fillmore-labs.com/usingsimplifier/internal/run"
	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

// Finding describes a file whose using directives can be moved.
type Finding struct {
	File       string   `json:"file"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Message    string   `json:"message"`
	Directives []string `json:"directives"`
	Namespaces []string `json:"namespaces"`
}

func (a *app) checkCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report files whose using directives can be moved into namespaces",
		Long: `check reports every C# file whose file-level using directives can be moved into its
namespaces. It exits with status 3 when such files are found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.sourceFiles(args)
			if err != nil {
				return err
			}

			results, err := a.process(cmd.Context(), files, relocate.AtRoot())
			if err != nil {
				return err
			}

			findings := Findings(results)

			if asJSON {
				err = writeJSON(a.stdout, findings)
			} else {
				err = writeFindings(a.stdout, findings)
			}

			if err != nil {
				return err
			}

			if len(findings) > 0 {
				return ErrFindings
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print findings as JSON")

	return cmd
}

// Findings collects the findings of applicable results.
func Findings(results []run.Result) []Finding {
	findings := make([]Finding, 0, len(results))

	for _, result := range results {
		if !result.Applicable() {
			continue
		}

		file := astutil.NewCurrentFile(token.NewFileSet(), result.Name, result.Source)
		directives, targets := result.Action.Directives(), result.Action.Targets()
		pos := file.Position(directives[0].Span().Start)

		findings = append(findings, Finding{
			File:       result.Name,
			Line:       pos.Line,
			Column:     pos.Column,
			Message:    report.Message(result.Action),
			Directives: names(directives),
			Namespaces: names(targets),
		})
	}

	return findings
}

func names(nodes []*syntax.Node) []string {
	result := make([]string, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.Name())
	}

	return result
}

func writeFindings(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", f.File, f.Line, f.Column, f.Message); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(findings)
}
