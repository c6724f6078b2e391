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

// Code generation errors are in the [400-500) range.
var (
	ErrorIllegalBindName  = newError(400, "Bind name '%v' is not a valid identifier")
	ErrorReservedBindName = newError(401, "Bind name '%v' collides with an identifier used by generated code")
	ErrorIllegalRuleName  = newError(402, "Rule name '%v' cannot be used as a method name")
	ErrorIllegalPackage   = newError(403, "'%v' is not a valid package name")
	ErrorFormatFailed     = newError(404, "Generated source could not be formatted: %v")
	ErrorIllegalTypeName  = newError(405, "'%v' cannot be used as the parser's type name")
	ErrorBindIsParameter  = newError(406, "Bind name '%v' is already the name of a rule parameter")
	ErrorIllegalParameter = newError(407, "Parameter name '%v' cannot be used as a Go identifier")
)
