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

// Package config holds the behavior switches shared by all front ends.
package config

import "log/slog"

// Flag is a single behavior switch.
type Flag uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flag = 1 << iota

	// AllowSyntaxErrors permits refactoring files the parser had to recover from errors in.
	AllowSyntaxErrors
)

var flagNames = [...]struct {
	flag Flag
	name string
}{
	{IncludeGenerated, "generated"},
	{AllowSyntaxErrors, "syntax-errors"},
}

// String returns the option name of a single flag.
func (f Flag) String() string {
	for _, n := range flagNames {
		if n.flag == f {
			return n.name
		}
	}

	return "unknown"
}

// Behavior is a bit set of [Flag] values.
type Behavior struct {
	value Flag
}

// NewBehavior creates a [Behavior] with the specified flags enabled.
func NewBehavior(flags ...Flag) Behavior {
	var b Behavior
	for _, flag := range flags {
		b.Set(flag, true)
	}

	return b
}

// DefaultBehavior returns the behavior used when nothing is configured.
func DefaultBehavior() Behavior {
	return NewBehavior()
}

// Set enables or disables flag.
func (b *Behavior) Set(flag Flag, value bool) {
	if value {
		b.value |= flag
	} else {
		b.value &^= flag
	}
}

// Enabled checks whether flag is set.
func (b Behavior) Enabled(flag Flag) bool {
	return b.value&flag != 0
}

// LogValue implements [slog.LogValuer].
func (b Behavior) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(flagNames))
	for _, n := range flagNames {
		as = append(as, slog.Bool(n.name, b.Enabled(n.flag)))
	}

	return slog.GroupValue(as...)
}
