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

package syntax

//go:generate go tool stringer -type Kind -trimprefix Kind

// Kind discriminates the variants of [Node].
type Kind uint8

const (
	// KindInvalid is the zero Kind.
	KindInvalid Kind = iota

	// KindFileScope is the implicit top-level container of a source file.
	KindFileScope

	// KindNamespaceScope is a block or file-scoped namespace declaration.
	KindNamespaceScope

	// KindUsingDirective is a relocatable namespace import.
	KindUsingDirective

	// KindExternAlias is an extern alias directive. It has to precede all using directives of its scope.
	KindExternAlias

	// KindOpaque is any other declaration, comment or directive, kept as text.
	KindOpaque

	// KindConditional is a preprocessor #if, #elif or #else block. Its members are nodes of the
	// enclosing scope, but it is not a scope itself.
	KindConditional
)

// Scope reports whether using directives of this kind of node can be relocated out of or into it.
func (k Kind) Scope() bool {
	return k == KindFileScope || k == KindNamespaceScope
}
