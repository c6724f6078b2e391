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

// Package errors contains the catalog of numbered diagnostics issued while decoding, validating, transforming, and
// generating code for a grammar.
package errors

import (
	"github.com/pulumi/pegc/pkg/diag"
)

func newError(id diag.ID, message string) *diag.Diag {
	return &diag.Diag{ID: id, Message: message}
}

func newWarning(id diag.ID, message string) *diag.Diag {
	return &diag.Diag{ID: id, Message: message}
}
