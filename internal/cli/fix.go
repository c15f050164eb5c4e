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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/report"
	"fillmore-labs.com/usingsimplifier/internal/run"
)

// ErrOffsetFiles is returned when --offset is used with other than exactly one file.
var ErrOffsetFiles = errors.New("--offset requires exactly one file")

func (a *app) fixCommand() *cobra.Command {
	var (
		write  bool
		diff   bool
		offset int
	)

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Move using directives into namespaces",
		Long: `fix moves the file-level using directives of C# files into their namespaces.

By default the resulting sources are printed. With -w files are rewritten in place,
with -d unified diffs are printed instead. --offset applies the refactoring only when
the byte offset lies inside a file-level using directive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trigger := relocate.AtRoot()

			if cmd.Flags().Changed("offset") {
				if len(args) != 1 {
					return ErrOffsetFiles
				}

				trigger = relocate.AtOffset(offset)
			}

			files, err := a.sourceFiles(args)
			if err != nil {
				return err
			}

			results, err := a.process(cmd.Context(), files, trigger)
			if err != nil {
				return err
			}

			for _, result := range results {
				if err := a.emit(result, write, diff); err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&write, "write", "w", false, "write result to source files instead of stdout")
	flags.BoolVarP(&diff, "diff", "d", false, "display diffs instead of rewriting files")
	flags.IntVar(&offset, "offset", -1, "byte offset of the cursor (single file only)")

	return cmd
}

// emit outputs a single result according to the fix mode.
func (a *app) emit(result run.Result, write, diff bool) error {
	switch {
	case diff:
		_, err := io.WriteString(a.stdout, report.UnifiedDiff(result.Name, result.Source, result.NewSource()))

		return err

	case write:
		if !result.Applicable() {
			return nil
		}

		return a.writeFile(result)

	default:
		_, err := a.stdout.Write(result.NewSource())

		return err
	}
}

// writeFile replaces the content of the result's file, keeping its permissions.
func (a *app) writeFile(result run.Result) error {
	info, err := os.Stat(result.Name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(result.Name, result.NewSource(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("can't write %s: %w", result.Name, err)
	}

	a.logger.Info("Rewrote file",
		zap.String("file", result.Name),
		zap.Int("directives", len(result.Action.Directives())),
		zap.Int("namespaces", len(result.Action.Targets())))

	return nil
}
