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

// Package analyzer implements the usingsimplifier static analysis pass.
//
// # Overview
//
// UsingSimplifier finds C# source files next to the Go packages being analyzed and reports
// using directives at file level that can be moved into every namespace declared in the file.
//
// # Example
//
// Before:
//
//	using System;
//
//	namespace App
//	{
//	    class Program { }
//	}
//
// After applying usingsimplifier's suggested fix:
//
//	namespace App
//	{
//	    using System;
//	    class Program { }
//	}
//
// # Skipped Files
//
// Generated files (*.g.cs, *.designer.cs, or an <auto-generated> header), files with syntax errors
// and files with a //nolint:usingsimplifier comment before the first namespace are not reported.
// The first two can be enabled with the -generated and -syntax-errors flags.
package analyzer
