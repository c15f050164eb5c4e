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
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/usingsimplifier/internal/relocate"
	"fillmore-labs.com/usingsimplifier/internal/run"
)

const sourceExt = ".cs"

// skipDir reports whether a directory is never searched for sources.
func skipDir(name string) bool {
	switch name {
	case "bin", "obj":
		return true

	default:
		return len(name) > 1 && strings.HasPrefix(name, ".")
	}
}

// excluded reports whether name matches one of the configured exclude patterns, either by base name
// or by slash-separated path.
func (a *app) excluded(name string) bool {
	slashed, base := filepath.ToSlash(filepath.Clean(name)), filepath.Base(name)

	for _, pattern := range a.config.Exclude {
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}

		if ok, _ := path.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}

// sourceFiles expands paths into C# source files. Directories are walked recursively, explicitly named
// files are always included. No paths means the current directory.
func (a *app) sourceFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if name != root && (skipDir(d.Name()) || a.excluded(name)) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(name) == sourceExt && !a.excluded(name) {
				files = append(files, name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// process runs the pipeline on files concurrently. Results are in input order.
func (a *app) process(ctx context.Context, files []string, trigger relocate.Trigger) ([]run.Result, error) {
	opts := a.runOptions()
	results := make([]run.Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range files {
		g.Go(func() error {
			src, err := os.ReadFile(name)
			if err != nil {
				return err
			}

			result, err := opts.File(ctx, nil, name, src, trigger)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
