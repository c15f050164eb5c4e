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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/usingsimplifier/internal/relocate"
)

const debounce = 100 * time.Millisecond

func (a *app) watchCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Check C# files whenever they change",
		Long: `watch re-checks C# files under the given paths when they are written or created,
until interrupted. With -w applicable files are fixed in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args, write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "fix changed files in place")

	return cmd
}

// watch runs the event loop until ctx is canceled.
func (a *app) watch(ctx context.Context, paths []string, write bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs, err := a.watchDirs(paths)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	a.logger.Info("Watching for changes", zap.Int("directories", len(dirs)))

	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			a.handleEvent(watcher, event, pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Warn("Watch error", zap.Error(err))

		case now := <-ticker.C:
			if ready := settled(pending, now); len(ready) > 0 {
				a.recheck(ctx, ready, write)
			}
		}
	}
}

// handleEvent records changed source files and starts watching new directories.
func (a *app) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event, pending map[string]time.Time) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || a.excluded(event.Name) {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !skipDir(info.Name()) {
				if err := watcher.Add(event.Name); err != nil {
					a.logger.Warn("Can't watch directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}

			return
		}
	}

	if filepath.Ext(event.Name) != sourceExt {
		return
	}

	a.logger.Debug("File changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
	pending[event.Name] = time.Now()
}

// settled removes and returns the sorted files whose last event is at least one debounce interval old.
func settled(pending map[string]time.Time, now time.Time) []string {
	var ready []string

	for name, last := range pending {
		if now.Sub(last) >= debounce {
			ready = append(ready, name)
			delete(pending, name)
		}
	}

	slices.Sort(ready)

	return ready
}

// recheck processes changed files, reporting or fixing them. Errors are logged.
func (a *app) recheck(ctx context.Context, files []string, write bool) {
	results, err := a.process(ctx, files, relocate.AtRoot())
	if err != nil {
		a.logger.Warn("Can't check files", zap.Error(err))

		return
	}

	if err := writeFindings(a.stdout, Findings(results)); err != nil {
		a.logger.Warn("Can't write findings", zap.Error(err))
	}

	if !write {
		return
	}

	for _, result := range results {
		if !result.Applicable() {
			continue
		}

		if err := a.writeFile(result); err != nil {
			a.logger.Warn("Can't fix file", zap.Error(err))
		}
	}
}

// watchDirs returns the directories to watch for paths: directories recursively and the parent
// directory of files.
func (a *app) watchDirs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var dirs []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(root))

			continue
		}

		err = filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return err
			}

			if name != root && (skipDir(d.Name()) || a.excluded(name)) {
				return filepath.SkipDir
			}

			dirs = append(dirs, name)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(dirs)

	return slices.Compact(dirs), nil
}
