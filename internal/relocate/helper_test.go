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

package relocate_test

import (
	"iter"
	"slices"

	"fillmore-labs.com/usingsimplifier/internal/syntax"
)

func names(nodes []*syntax.Node) []string {
	n := make([]string, 0, len(nodes))
	for _, node := range nodes {
		n = append(n, node.Name())
	}

	return n
}

func collect(seq iter.Seq[*syntax.Node]) []*syntax.Node {
	return slices.Collect(seq)
}
