// Copyright 2016-2018, Pulumi Corporation.
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

package errors

// Decoding errors are in the [100-200) range.
var (
	ErrorIO                      = newError(100, "An IO error occurred during the current operation: %v")
	ErrorCouldNotReadGrammar     = newError(101, "An IO error occurred while reading the grammar: %v")
	ErrorIllegalGrammarSyntax    = newError(102, "A syntax error was detected while parsing the grammar: %v")
	ErrorIllegalWorkspaceSyntax  = newError(103, "A syntax error was detected while parsing project settings: %v")
	WarningIllegalMarkupFileExt  = newWarning(104, "%v isn't a valid grammar file extension (expected .json or .yaml)")
	ErrorNothingToCompile        = newError(105, "No grammar files were given and the project lists none")
	ErrorGeneratedOutputMismatch = newError(106, "Generated output for %v is out of date with %v")
	WarningIllegalProjectCasing  = newWarning(107, "%v looks like a project file, but its name must be exactly %v")
	WarningIllegalProjectExt     = newWarning(108, "%v isn't a valid project file extension (expected .json or .yaml)")
	WarningIncompatibleGenerator = newWarning(109, "%v was generated by pegc %v, which this version (%v) cannot regenerate in place")
)
