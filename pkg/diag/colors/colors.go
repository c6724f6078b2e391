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

// Package colors wraps loreley so diagnostics can carry color directives that are only compiled when the output
// is known to be a terminal.
package colors

import (
	"github.com/reconquest/loreley"

	"github.com/pulumi/pegc/pkg/util/contract"
)

const colorLeft = "<{%"
const colorRight = "%}>"

func init() {
	// Change the Loreley delimiters from { and }, to something more complex, to avoid accidental collisions with
	// braces in grammar action code that ends up quoted in diagnostics.
	loreley.DelimLeft = colorLeft
	loreley.DelimRight = colorRight
}

// Command wraps a loreley directive in this package's delimiters.
func Command(s string) string {
	return colorLeft + s + colorRight
}

// ColorizeText compiles and executes all color directives in s.
func ColorizeText(s string) string {
	c, err := loreley.CompileAndExecuteToString(s, nil, nil)
	contract.Assertf(err == nil, "Expected no errors during string colorization; str=%v, err=%v", s, err)
	return c
}

// Basic
var (
	Red          = Command("fg 1")
	Green        = Command("fg 2")
	Yellow       = Command("fg 3")
	Magenta      = Command("fg 5")
	Cyan         = Command("fg 6")
	White        = Command("fg 7")
	BrightBlack  = Command("fg 8")
	BrightYellow = Command("fg 11")
	Reset        = Command("reset")
)

// Special predefined colors for logical conditions.
var (
	SpecInfo        = Magenta     // for information.
	SpecError       = Red         // for errors.
	SpecWarning     = Yellow      // for warnings.
	SpecLocation    = Cyan        // for source locations.
	SpecNote        = White       // for simple notes.
	SpecUnimportant = BrightBlack // for notes that can be skimmed or aren't very important.

	SpecAdded   = Green // for adds (in the diff sense).
	SpecDeleted = Red   // for deletes (in the diff sense).
)
