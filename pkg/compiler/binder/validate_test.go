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

package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/diag"
)

// validate checks a grammar in token mode, where any tag is a valid terminal.
func validate(g *ast.Grammar) error {
	return validateWith(g, true)
}

func validateWith(g *ast.Grammar, tokens bool) error {
	opts := core.DefaultOptions()
	opts.TokenMode = tokens
	ctx := core.NewContext(nil, nil, opts)
	Validate(ctx, g)
	return ctx.Err()
}

func assertDiag(t *testing.T, err error, id diag.ID, rule string, msg string) {
	ce, ok := core.AsError(err, id)
	if assert.True(t, ok, "expected diagnostic %v in %v", id, err) {
		assert.Equal(t, rule, ce.Diag.Rule)
		assert.Contains(t, ce.Error(), msg)
	}
}

func TestValidGrammar(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("Start", ast.NewSequence(ast.NewPCall("List", ast.NewCall("Item", "")), ast.NewCall("Indent", "4"))),
		ast.NewRule("List", ast.NewDelimited(ast.NewImmediate("elem"), ast.NewTokenText(",")), "elem"),
		ast.NewRule("Item", ast.NewTokenTag("id")),
		ast.NewRule("Indent", ast.NewPredicate("n > 0"), "n"),
	)
	assert.Nil(t, validate(g))
}

func TestDuplicateRule(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", ast.NewRule("A", ast.NewTokenTag("a")), ast.NewRule("A", ast.NewTokenTag("b")))
	assertDiag(t, validate(g), 200, "A", "Rule 'A' is defined more than once")
}

func TestUndefinedRuleSuggestsClosest(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("Expression", ast.NewTokenTag("x")),
		ast.NewRule("Statement", ast.NewCall("Expresion", "")),
	)
	assertDiag(t, validate(g), 202, "Statement", "Rule 'Expresion' is not defined; did you mean 'Expression'?")
}

func TestUndefinedRuleWithoutSuggestion(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", ast.NewRule("Start", ast.NewPCall("Completely", ast.NewTokenTag("x"))))
	assertDiag(t, validate(g), 201, "Start", "Rule 'Completely' is not defined")
}

func TestArityMismatch(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("List", ast.NewRepeat(ast.NewImmediate("elem")), "elem"),
		ast.NewRule("A", ast.NewPCall("List", ast.NewTokenTag("x"), ast.NewTokenTag("y"))),
		ast.NewRule("B", ast.NewCall("List", "")),
		ast.NewRule("C", ast.NewCall("A", "1")),
	)
	err := validate(g)
	assertDiag(t, err, 205, "A", "Rule 'List' declares 1 parameters, but is passed 2 patterns")
	assertDiag(t, err, 206, "B", "Rule 'List' declares 1 parameters, but is called with 0 arguments")
	ce, ok := core.AsError(err, 206)
	assert.True(t, ok)
	assert.Equal(t, "B", ce.Diag.Rule)
}

func TestEmptyCompositesAndParameters(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("A", ast.NewChoice()),
		ast.NewRule("B", ast.NewOptional(ast.NewSequence()), "p", "p"),
	)
	err := validate(g)
	assertDiag(t, err, 204, "A", "A Choice pattern must have at least one member")
	assertDiag(t, err, 204, "A", "Choice")
	assertDiag(t, err, 203, "B", "Parameter 'p' is declared more than once")
}

func TestMissingPattern(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", &ast.Rule{Name: "A"}, &ast.Rule{Pattern: ast.NewTokenTag("x")})
	err := validate(g)
	assertDiag(t, err, 208, "A", "Rule 'A' has no pattern")
	_, ok := core.AsError(err, 207)
	assert.True(t, ok)
}

func TestUnknownCharClass(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("Word", ast.NewSequence(ast.NewRepeat1(ast.NewTokenTag("alpha")), ast.NewTokenTag("eof"))),
		ast.NewRule("Name", ast.NewTokenTag("ident")),
	)
	assertDiag(t, validateWith(g, false), 209, "Name", "'ident' is not a character class; expected one of alnum, alpha")
	assert.Nil(t, validateWith(g, true))
}
