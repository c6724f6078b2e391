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

// Package diag contains the diagnostics machinery shared by every phase of the grammar compiler.  Problems in a user's
// grammar are never returned as bare strings; they are issued as numbered Diag values to a Sink, which counts and
// renders them.
package diag

// ID is a unique diagnostics identifier.
type ID int

// Diag is an instance of an error or warning generated by the compiler.
type Diag struct {
	ID      ID        // a unique identifier for this diagnostic.
	Message string    // a human-friendly message for this diagnostic.
	Doc     *Document // the document in which this diagnostic occurred.
	Rule    string    // the grammar rule this diagnostic concerns, if any.
}

// Message returns an anonymous diagnostic message without any source or ID information.
func Message(msg string) *Diag {
	return &Diag{Message: msg}
}

// WithDocument returns a copy of this diagnostic attached to the given grammar document.
func (diag *Diag) WithDocument(doc *Document) *Diag {
	return &Diag{
		ID:      diag.ID,
		Message: diag.Message,
		Doc:     doc,
		Rule:    diag.Rule,
	}
}

// WithRule returns a copy of this diagnostic attributed to the given rule.
func (diag *Diag) WithRule(rule string) *Diag {
	return &Diag{
		ID:      diag.ID,
		Message: diag.Message,
		Doc:     diag.Doc,
		Rule:    rule,
	}
}
