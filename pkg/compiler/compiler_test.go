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

package compiler

import (
	"context"
	"go/parser"
	"go/token"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/leftrec"
	"github.com/pulumi/pegc/pkg/diag"
)

func call(name string) *ast.Call { return ast.NewCall(name, "") }

// calc is `Expr := Expr "+" Num | Num` over single digits.
func calc() *ast.Grammar {
	return ast.NewGrammar("Calc",
		ast.NewRule("Expr", ast.NewChoice(
			ast.NewSequence(call("Expr"), ast.NewTokenText("+"), call("Num")),
			call("Num"),
		)),
		ast.NewRule("Num", ast.NewTokenTag("digit")),
	)
}

func TestCompileCalc(t *testing.T) {
	t.Parallel()

	g := calc()
	original := ast.CloneGrammar(g)

	compiled, err := Compile(core.NewContext(nil, nil, nil), g)
	require.NoError(t, err)
	assert.True(t, ast.EqualGrammars(original, g), "the input grammar must not be modified")

	expected := ast.NewSequence(
		ast.NewBind(leftrec.Result, call("Num")),
		ast.NewRepeat(ast.NewSequence(
			ast.NewBind(leftrec.Temp, ast.NewSequence(
				ast.NewAction(leftrec.Result), ast.NewTokenText("+"), call("Num"),
			)),
			ast.NewBind(leftrec.Result, ast.NewAction(leftrec.Temp)),
		)),
		ast.NewAction(leftrec.Result),
	)
	expr := compiled.Rule("Expr")
	require.NotNil(t, expr)
	assert.True(t, ast.Equal(expected, expr.Pattern), "got %v", ast.String(expr.Pattern))
	assert.Equal(t, ast.Names{leftrec.Result, leftrec.Temp}, expr.Bound)
	assert.Equal(t, ast.Names{}, compiled.Rule("Num").Bound)
}

func TestCompileStopsAtFirstFailingPass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		g    *ast.Grammar
		id   diag.ID
	}{
		{"undefined rule", ast.NewGrammar("G", ast.NewRule("A", call("Nope"))), 201},
		{"no base case", ast.NewGrammar("G",
			ast.NewRule("A", ast.NewSequence(call("A"), ast.NewTokenText("x")))), 301},
		{"mutual recursion", ast.NewGrammar("G",
			ast.NewRule("A", ast.NewChoice(ast.NewSequence(call("B"), ast.NewTokenText("a")), ast.NewTokenText("a"))),
			ast.NewRule("B", ast.NewChoice(ast.NewSequence(call("A"), ast.NewTokenText("b")), ast.NewTokenText("b"))),
		), 304},
	}
	for _, c := range cases {
		ctx := core.NewContext(nil, nil, nil)
		compiled, err := Compile(ctx, c.g)
		assert.Nil(t, compiled, c.name)
		_, found := core.AsError(err, c.id)
		assert.True(t, found, "%v: expected PEG%v, got %v", c.name, c.id, err)
	}
}

func TestCompileSkips(t *testing.T) {
	t.Parallel()

	a, b, c := ast.NewTokenText("a"), ast.NewTokenText("b"), ast.NewTokenText("c")
	g := ast.NewGrammar("G", ast.NewRule("R", ast.NewChoice(ast.NewSequence(a, b), ast.NewSequence(a, c))))

	factored, err := Compile(core.NewContext(nil, nil, nil), g)
	require.NoError(t, err)
	assert.True(t, ast.Equal(
		ast.NewSequence(a, ast.NewChoice(b, c)),
		factored.Rule("R").Pattern), "got %v", ast.String(factored.Rule("R").Pattern))

	opts := core.DefaultOptions()
	opts.SkipFactor = true
	unfactored, err := Compile(core.NewContext(nil, nil, opts), g)
	require.NoError(t, err)
	assert.True(t, ast.Equal(g.Rules[0].Pattern, unfactored.Rule("R").Pattern))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	src, err := Generate(core.NewContext(nil, nil, nil), calc())
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "calc.go", src, 0)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (p *Calc) Expr() rt.Result {")
	assert.Contains(t, string(src), "var LRECRESULT, LRECTEMP interface{}")
}

func TestGenerateReportsCompileErrors(t *testing.T) {
	t.Parallel()

	ctx := core.NewContext(nil, nil, nil)
	src, err := Generate(ctx, ast.NewGrammar("G", ast.NewRule("A", call("A"))))
	assert.Nil(t, src)
	assert.Error(t, err)
	assert.Equal(t, 1, ctx.Diag.Errors())
}

func TestPassesAreTraced(t *testing.T) {
	tracer := mocktracer.New()
	old := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(old)

	root := tracer.StartSpan("root")
	ctx := core.NewContext(nil, nil, nil)
	ctx.Base = opentracing.ContextWithSpan(context.Background(), root)
	_, err := Generate(ctx, calc())
	require.NoError(t, err)
	root.Finish()

	var names []string
	for _, span := range tracer.FinishedSpans() {
		names = append(names, span.OperationName)
		if span.OperationName != "root" {
			assert.Equal(t, "Calc", span.Tag("grammar"))
		}
	}
	assert.Equal(t, []string{
		"pegc.validate", "pegc.leftrec", "pegc.factor", "pegc.simplify", "pegc.bindings", "pegc.codegen", "root",
	}, names)
}
