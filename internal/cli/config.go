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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/usingsimplifier/internal/config"
)

// DefaultConfigFile is read from the current directory when no configuration file is given.
const DefaultConfigFile = ".usingsimplifier.yaml"

// ErrInvalidExclude is returned for malformed exclude patterns.
var ErrInvalidExclude = errors.New("invalid exclude pattern")

// FileConfig is the content of a YAML configuration file.
type FileConfig struct {
	// Generated enables checks of generated files.
	Generated *bool `yaml:"generated"`
	// SyntaxErrors enables checks of files with syntax errors.
	SyntaxErrors *bool `yaml:"syntax-errors"`
	// Exclude lists glob patterns of files and directories to skip.
	Exclude []string `yaml:"exclude"`
}

// LoadConfig reads the configuration file name. An empty name reads [DefaultConfigFile] when it exists.
func LoadConfig(name string) (FileConfig, error) {
	optional := name == ""
	if optional {
		name = DefaultConfigFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}

		return FileConfig{}, fmt.Errorf("can't read configuration: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration, rejecting unknown keys.
func ParseConfig(data []byte) (FileConfig, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("can't parse configuration: %w", err)
	}

	for _, pattern := range cfg.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return FileConfig{}, fmt.Errorf("%w %q: %w", ErrInvalidExclude, pattern, err)
		}
	}

	return cfg, nil
}

// Behavior returns the behavior switches set in the configuration.
func (c FileConfig) Behavior() config.Behavior {
	b := config.DefaultBehavior()

	if c.Generated != nil {
		b.Set(config.IncludeGenerated, *c.Generated)
	}

	if c.SyntaxErrors != nil {
		b.Set(config.AllowSyntaxErrors, *c.SyntaxErrors)
	}

	return b
}
