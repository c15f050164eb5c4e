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

// Package relocate implements the "Simplify using directives" refactoring.
//
// # Overview
//
// The refactoring moves the using directives of a file scope into every namespace declared below it.
//
// Before:
//
//	using System;
//	using System.IO;
//
//	namespace App
//	{
//	    class C {}
//	}
//
// After:
//
//	namespace App
//	{
//	    using System;
//	    using System.IO;
//	    class C {}
//	}
//
// Nested namespaces receive their own copy of the directives. Directives already inside a namespace
// and global using directives are never moved.
//
// # Usage
//
// [Check] decides whether the refactoring applies at a [Trigger] and returns an [Action]. The edit is
// only computed when the action is invoked.
package relocate
