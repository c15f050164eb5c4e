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

package gclplugin

import usingsimplifier "fillmore-labs.com/usingsimplifier/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// SyntaxErrors enables checks of files with syntax errors.
	SyntaxErrors *bool `json:"syntax-errors,omitzero"`
}

// Options converts [Settings] into a list of [usingsimplifier.Option] for the usingsimplifier analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []usingsimplifier.Option {
	var opts []usingsimplifier.Option

	opts = appendOption(opts, s.Generated, usingsimplifier.WithGenerated)
	opts = appendOption(opts, s.SyntaxErrors, usingsimplifier.WithSyntaxErrors)

	return opts
}

// appendOption appends a non-nil setting to a [usingsimplifier.Option] list.
func appendOption[T any](opts []usingsimplifier.Option, value *T, constructor func(T) usingsimplifier.Option) []usingsimplifier.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
