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

// Grammar validation errors are in the [200-300) range.
var (
	ErrorDuplicateRule        = newError(200, "Rule '%v' is defined more than once")
	ErrorUndefinedRule        = newError(201, "Rule '%v' is not defined")
	ErrorUndefinedRuleSuggest = newError(202, "Rule '%v' is not defined; did you mean '%v'?")
	ErrorDuplicateParameter   = newError(203, "Parameter '%v' is declared more than once")
	ErrorEmptyComposite       = newError(204, "A %v pattern must have at least one member")
	ErrorPCallArityMismatch   = newError(205, "Rule '%v' declares %v parameters, but is passed %v patterns")
	ErrorCallArityMismatch    = newError(206, "Rule '%v' declares %v parameters, but is called with %v arguments")
	ErrorMissingRuleName      = newError(207, "Every rule must have a name")
	ErrorMissingPattern       = newError(208, "Rule '%v' has no pattern")
	ErrorUnknownCharClass     = newError(209, "'%v' is not a character class; expected one of %v")
)
