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

package gen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/binder"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/diag"
)

func newTestContext(opts *core.Options) *core.Context {
	return core.NewContext(nil, nil, opts)
}

func generate(t *testing.T, opts *core.Options, g *ast.Grammar) string {
	src, err := Generate(newTestContext(opts), binder.AnalyzeBindings(g))
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "parser.go", src, parser.AllErrors)
	require.NoError(t, err, "generated source:\n%s", src)
	return string(src)
}

// calcGrammar is the left recursion free form of `Expr := Expr "+" Num | Num`.
func calcGrammar() *ast.Grammar {
	return ast.NewGrammar("Calc",
		ast.NewRule("Expr", ast.NewSequence(
			ast.NewBind("LRECRESULT", ast.NewCall("Num", "")),
			ast.NewRepeat(ast.NewSequence(
				ast.NewBind("LRECTEMP", ast.NewSequence(
					ast.NewBind("l", ast.NewAction("LRECRESULT")),
					ast.NewTokenText("+"),
					ast.NewBind("r", ast.NewCall("Num", "")),
					ast.NewAction("add(l, r)"),
				)),
				ast.NewBind("LRECRESULT", ast.NewAction("LRECTEMP")),
			)),
			ast.NewAction("LRECRESULT"),
		)),
		ast.NewRule("Num", ast.NewSequence(
			ast.NewBind("ds", ast.NewRepeat1(ast.NewTokenTag("digit"))),
			ast.NewAction("number(ds)"),
		)),
	)
}

func TestGenerateScannerless(t *testing.T) {
	t.Parallel()

	src := generate(t, nil, calcGrammar())
	assert.Contains(t, src, "// Code generated by pegc ")
	assert.Contains(t, src, "package parser\n")
	assert.Contains(t, src, `import "github.com/pulumi/pegc/pkg/rt"`)
	assert.Contains(t, src, "type Calc struct {\n\t*rt.Scanner\n}")
	assert.Contains(t, src, "func NewCalc(src string) *Calc {")
	assert.Contains(t, src, "func (p *Calc) Expr() rt.Result {")
	assert.Contains(t, src, "func (p *Calc) Num() rt.Result {")
	assert.Contains(t, src, "var LRECRESULT, l, r, LRECTEMP interface{}")
	assert.Contains(t, src, "_, _, _, _ = LRECRESULT, l, r, LRECTEMP")
	assert.Contains(t, src, "RESULT = p.Num()")
	assert.Contains(t, src, `RESULT = p.Text("+")`)
	assert.Contains(t, src, `RESULT = p.Tag("digit")`)
	assert.Contains(t, src, "RESULT = rt.Matched(add(l, r))")
	assert.Contains(t, src, "LRECRESULT = RESULT.Value()")
	assert.Contains(t, src, "return RESULT")
}

func TestGenerateTokens(t *testing.T) {
	t.Parallel()

	opts := &core.Options{TokenMode: true, Package: "calc", TypeName: "Parser"}
	src := generate(t, opts, calcGrammar())
	assert.Contains(t, src, "package calc\n")
	assert.Contains(t, src, "type Parser struct {\n\t*rt.TokenStream\n}")
	assert.Contains(t, src, "func NewParser(tokens []rt.Token) *Parser {")
	assert.Contains(t, src, "func (p *Parser) Expr() rt.Result {")
	assert.NotContains(t, src, "rt.NewScanner")
}

func TestGenerateConstructs(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G",
		ast.NewRule("Choice", ast.NewChoice(ast.NewTokenText("a"), ast.NewTokenText("b"))),
		ast.NewRule("Negate", ast.NewNegate(ast.NewTokenText("a"))),
		ast.NewRule("Look", ast.NewLookahead(ast.NewTokenText("a"))),
		ast.NewRule("Opt", ast.NewOptional(ast.NewTokenText("a"))),
		ast.NewRule("Many", ast.NewRepeat(ast.NewTokenText("a"))),
		ast.NewRule("Many1", ast.NewRepeat1(ast.NewTokenText("a"))),
		ast.NewRule("List", ast.NewDelimited(ast.NewTokenTag("digit"), ast.NewTokenText(","))),
		ast.NewRule("List1", ast.NewDelimited1(ast.NewTokenTag("digit"), ast.NewTokenText(","))),
		ast.NewRule("Pred", ast.NewPredicate("ok()")),
		ast.NewRule("Imm", ast.NewImmediate("elem"), "elem"),
		ast.NewRule("Args", ast.NewCall("Imm", "x")),
		ast.NewRule("Thunks", ast.NewPCall("Imm", ast.NewBind("x", ast.NewTokenText("a")))),
	)
	src := generate(t, nil, g)

	// Each construct saves the cursor in a fresh temporary.
	assert.Contains(t, src, "INITPOS1 := p.Position()")
	assert.Contains(t, src, "p.SetPosition(INITPOS1)")
	assert.Contains(t, src, "ARRAY1 := rt.List{}")
	assert.Contains(t, src, "ARRAY1 = ARRAY1.Append(RESULT)")
	assert.Contains(t, src, "if len(ARRAY1) == 0 {")
	assert.Contains(t, src, "if len(ARRAY1) > 0 {")
	assert.Contains(t, src, "if rt.Truthy(ok()) {")
	assert.Contains(t, src, "func (p *G) Imm(elem interface{}) rt.Result {")
	assert.Contains(t, src, "RESULT = rt.Invoke(elem)")
	assert.Contains(t, src, "RESULT = p.Imm(x)")
	assert.Contains(t, src, "rt.Thunk(func() rt.Result {")
	assert.Contains(t, src, "x = RESULT.Value()")
}

func TestGenerateNoFormat(t *testing.T) {
	t.Parallel()

	opts := core.DefaultOptions()
	opts.NoFormat = true
	src, err := Generate(newTestContext(opts), binder.AnalyzeBindings(calcGrammar()))
	require.NoError(t, err)
	assert.Contains(t, string(src), "\n\tfor { // sequence\n\t\tRESULT = p.Num()\n")
}

func TestGenerateBadHostCode(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", ast.NewRule("R", ast.NewAction("1 +")))
	ctx := newTestContext(nil)
	src, err := Generate(ctx, binder.AnalyzeBindings(g))
	assert.Error(t, err)
	assert.NotEmpty(t, src)
	_, found := core.AsError(err, 404)
	assert.True(t, found)
}

func TestGenerateRejectsNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts *core.Options
		rule *ast.Rule
		id   diag.ID
	}{
		{"bind not an identifier", nil, ast.NewRule("R", ast.NewBind("a-b", ast.NewTokenText("a"))), 400},
		{"bind is a keyword", nil, ast.NewRule("R", ast.NewBind("func", ast.NewTokenText("a"))), 400},
		{"bind is the register", nil, ast.NewRule("R", ast.NewBind("RESULT", ast.NewTokenText("a"))), 401},
		{"bind is a temporary", nil, ast.NewRule("R", ast.NewBind("ARRAY2", ast.NewTokenText("a"))), 401},
		{"bind is the receiver", nil, ast.NewRule("R", ast.NewBind("p", ast.NewTokenText("a"))), 401},
		{"rule is an input method", nil, ast.NewRule("Tag", ast.NewTokenText("a")), 402},
		{"rule is not an identifier", nil, ast.NewRule("my rule", ast.NewTokenText("a")), 402},
		{"bad package", &core.Options{Package: "my-parser"}, ast.NewRule("R", ast.NewTokenText("a")), 403},
		{"bad type", &core.Options{Package: "parser", TypeName: "rt"}, ast.NewRule("R", ast.NewTokenText("a")), 405},
		{"bind is a parameter", nil, ast.NewRule("R", ast.NewBind("x", ast.NewTokenText("a")), "x"), 406},
		{"parameter is a temporary", nil, ast.NewRule("R", ast.NewTokenText("a"), "INITPOS3"), 407},
	}
	for _, c := range cases {
		g := binder.AnalyzeBindings(ast.NewGrammar("G", c.rule))
		src, err := Generate(newTestContext(c.opts), g)
		assert.Nil(t, src, c.name)
		_, found := core.AsError(err, c.id)
		assert.True(t, found, "%v: expected PEG%v, got %v", c.name, c.id, err)
	}
}

type bogus struct {
	ast.PatternNode
}

func (*bogus) GetKind() ast.NodeKind { return "Bogus" }

func TestGenerateUnknownNode(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", ast.NewRule("R", ast.NewSequence(ast.NewTokenText("a"), &bogus{})))
	ctx := newTestContext(nil)
	ctx.Recover(func() {
		_, _ = Generate(ctx, g)
	})
	ce, found := core.AsError(ctx.Err(), 303)
	require.True(t, found)
	assert.Equal(t, "R", ce.Diag.Rule)

	assert.Panics(t, func() {
		_, _ = Generate(newTestContext(nil), g)
	})
}
