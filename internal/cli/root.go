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

// Package cli implements the usingsimplifier command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/usingsimplifier/internal/config"
	"fillmore-labs.com/usingsimplifier/internal/run"
)

// Exit codes returned by [Execute].
const (
	ExitOK       = 0
	ExitError    = 1
	ExitFindings = 3
)

// ErrFindings is returned by the check command when using directives can be simplified.
var ErrFindings = errors.New("using directives can be simplified")

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configFile   string
	verbose      bool
	generated    bool
	syntaxErrors bool

	config FileConfig
	logger *zap.Logger
}

// Execute runs the command line tool with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrFindings):
		return ExitFindings

	default:
		fmt.Fprintf(stderr, "usingsimplifier: %v\n", err)

		return ExitError
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "usingsimplifier",
		Short: "Move file-level C# using directives into namespaces",
		Long: `usingsimplifier finds C# source files whose file-level using directives can be moved
into every namespace declared in the file, and optionally rewrites them.

Generated files and files with syntax errors are skipped unless enabled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default "+DefaultConfigFile+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.generated, config.IncludeGenerated.String(), false, "check generated files")
	flags.BoolVar(&a.syntaxErrors, config.AllowSyntaxErrors.String(), false, "check files with syntax errors")

	cmd.AddCommand(a.checkCommand(), a.fixCommand(), a.watchCommand())

	return cmd
}

// setup loads the configuration file and initializes the logger.
func (a *app) setup(cmd *cobra.Command) error {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.TimeKey = ""
	a.logger = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.Lock(zapcore.AddSync(a.stderr)), level))

	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}

	if f := cmd.Flags(); f.Changed(config.IncludeGenerated.String()) {
		cfg.Generated = &a.generated
	}

	if f := cmd.Flags(); f.Changed(config.AllowSyntaxErrors.String()) {
		cfg.SyntaxErrors = &a.syntaxErrors
	}

	a.config = cfg

	behavior := cfg.Behavior()
	a.logger.Debug("Configuration loaded",
		zap.String("file", a.configFile),
		zap.Bool("generated", behavior.Enabled(config.IncludeGenerated)),
		zap.Bool("syntax-errors", behavior.Enabled(config.AllowSyntaxErrors)),
		zap.Strings("exclude", cfg.Exclude))

	return nil
}

// runOptions returns the per-file pipeline options, logging through zap.
func (a *app) runOptions() *run.Options {
	opts := run.DefaultOptions()
	opts.Behavior = a.config.Behavior()
	opts.Logger = slog.New(zapslog.NewHandler(a.logger.Core()))

	return opts
}
