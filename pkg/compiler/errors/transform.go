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

// Transformation errors are in the [300-400) range.
var (
	ErrorNoBaseCase          = newError(301, "no valid base case for rule `%v`")
	ErrorLeftRecursivePCall  = newError(302, "cannot pcall production rule %v left recursively")
	ErrorInvariantViolated   = newError(303, "invariant violated: %v")
	ErrorMutualLeftRecursion = newError(304, "rules %v are mutually left recursive; only self left recursion is supported")
)
