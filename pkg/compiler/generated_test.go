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
	"bytes"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/eval"
	"github.com/pulumi/pegc/pkg/rt"
	"github.com/pulumi/pegc/pkg/util/testutil"
)

func text(s string) *ast.TokenText { return ast.NewTokenText(s) }
func digit() *ast.TokenTag         { return ast.NewTokenTag("digit") }

// factorings are choices whose alternatives share prefixes, so that left factoring rewrites them.
func factorings() []ast.Pattern {
	a, b, c, d := text("a"), text("b"), text("c"), text("d")
	return ast.CloneAll([]ast.Pattern{
		ast.NewChoice(ast.NewSequence(a, b), ast.NewSequence(a, c)),
		ast.NewChoice(ast.NewSequence(a, b, c), ast.NewSequence(a, b, d), ast.NewSequence(a, c), d),
		ast.NewChoice(ast.NewSequence(a, ast.NewRepeat(b)), ast.NewSequence(a, c), ast.NewSequence(b, a)),
		ast.NewChoice(a, ast.NewSequence(a, b)),
		ast.NewChoice(ast.NewSequence(a, ast.NewChoice(ast.NewSequence(b, c), ast.NewSequence(b, d))),
			ast.NewSequence(a, b), c),
		ast.NewChoice(ast.NewSequence(ast.NewOptional(a), b), ast.NewSequence(ast.NewOptional(a), c)),
	})
}

func factoringRule(i int, p ast.Pattern) *ast.Rule {
	return ast.NewRule(fmt.Sprintf("Factor%v", i), p)
}

// behaviors is a grammar with a rule for every construct a generated parser has to get right at runtime.
func behaviors() *ast.Grammar {
	g := ast.NewGrammar("Behaviors",
		ast.NewRule("Expr", ast.NewChoice(
			ast.NewSequence(
				ast.NewBind("l", call("Expr")),
				text("+"),
				ast.NewBind("r", call("Num")),
				ast.NewAction("pair(l, r)"),
			),
			call("Num"),
		)),
		ast.NewRule("Num", digit()),
		ast.NewRule("Ord", ast.NewChoice(text("a"), text("ab"))),
		ast.NewRule("Not", ast.NewNegate(text("a"))),
		ast.NewRule("And", ast.NewLookahead(text("a"))),
		ast.NewRule("Many", ast.NewRepeat(text("x"))),
		ast.NewRule("Many1", ast.NewRepeat1(text("x"))),
		ast.NewRule("Empty", ast.NewRepeat(ast.NewOptional(text("x")))),
		ast.NewRule("List", ast.NewDelimited(digit(), text(","))),
		ast.NewRule("List1", ast.NewDelimited1(digit(), text(","))),
		ast.NewRule("Odd", ast.NewSequence(
			ast.NewBind("d", digit()),
			ast.NewPredicate("isOdd(d)"),
			ast.NewAction("d"),
		)),
		ast.NewRule("Wrap", ast.NewSequence(
			text("["),
			ast.NewBind("v", ast.NewImmediate("inner")),
			text("]"),
			ast.NewAction("v"),
		), "inner"),
		ast.NewRule("Bracket", ast.NewPCall("Wrap", digit())),
		ast.NewRule("Echo", ast.NewAction("x"), "x"),
		ast.NewRule("Arg", ast.NewSequence(ast.NewBind("n", call("Num")), ast.NewCall("Echo", "n"))),
	)
	for i, p := range factorings() {
		g.Rules = append(g.Rules, factoringRule(i, p))
	}
	return g
}

// behaviorsTest drives the generated parser.  The verdicts table is filled in with what the interpreter decides for
// the unfactored grammar.
const behaviorsTest = `package parser

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulumi/pegc/pkg/rt"
)

func pair(l, r interface{}) interface{} { return fmt.Sprintf("(%%v+%%v)", l, r) }

func isOdd(v interface{}) bool {
	s, _ := v.(string)
	return s != "" && (s[0]-'0')%%2 == 1
}

func parse(rule, src string) (rt.Result, int) {
	p := NewBehaviors(src)
	out := reflect.ValueOf(p).MethodByName(rule).Call(nil)
	return out[0].Interface().(rt.Result), p.Position()
}

func TestBehaviors(t *testing.T) {
	cases := []struct {
		rule  string
		src   string
		ok    bool
		value interface{}
		pos   int
	}{
		{"Expr", "1+2+3", true, "((1+2)+3)", 5},
		{"Expr", "1+", true, "1", 1},
		{"Expr", "+", false, nil, 0},
		{"Ord", "ab", true, "a", 1},
		{"Not", "b", true, nil, 0},
		{"Not", "a", false, nil, 0},
		{"And", "a", true, "a", 0},
		{"And", "b", false, nil, 0},
		{"Many", "yy", true, rt.List{}, 0},
		{"Many", "xxy", true, rt.List{"x", "x"}, 2},
		{"Many1", "y", false, nil, 0},
		{"Many1", "xa", true, rt.List{"x"}, 1},
		{"Empty", "", true, rt.List{nil}, 0},
		{"List", "1,2,", true, rt.List{"1", "2"}, 3},
		{"List", "", true, rt.List{}, 0},
		{"List1", "", false, nil, 0},
		{"List1", "7", true, rt.List{"7"}, 1},
		{"Odd", "3", true, "3", 1},
		{"Odd", "4", false, nil, 0},
		{"Bracket", "[7]", true, "7", 3},
		{"Bracket", "[x]", false, nil, 0},
		{"Arg", "5", true, "5", 1},
	}
	for _, c := range cases {
		result, pos := parse(c.rule, c.src)
		if assert.Equal(t, c.ok, result.OK(), "%%v on %%q", c.rule, c.src) && c.ok {
			assert.Equal(t, c.value, result.Value(), "%%v on %%q", c.rule, c.src)
			assert.Equal(t, c.pos, pos, "%%v on %%q", c.rule, c.src)
		}
	}
}

var verdicts = []struct {
	rule string
	src  string
	ok   bool
	pos  int
}{
%v}

func TestVerdictsMatchInterpreter(t *testing.T) {
	for _, v := range verdicts {
		result, pos := parse(v.rule, v.src)
		if assert.Equal(t, v.ok, result.OK(), "%%v on %%q", v.rule, v.src) && v.ok {
			assert.Equal(t, v.pos, pos, "%%v on %%q", v.rule, v.src)
		}
	}
}
`

// inputs returns every string of up to four letters drawn from a, b, c, and d.
func inputs() []string {
	var all []string
	var grow func(prefix string)
	grow = func(prefix string) {
		all = append(all, prefix)
		if len(prefix) < 4 {
			for _, letter := range []string{"a", "b", "c", "d"} {
				grow(prefix + letter)
			}
		}
	}
	grow("")
	return all
}

// verdicts interprets every factoring rule, unfactored, over every input, and renders the outcomes as Go table rows.
func verdicts(t *testing.T) string {
	var rules []*ast.Rule
	for i, p := range factorings() {
		rules = append(rules, factoringRule(i, p))
	}
	opts := core.DefaultOptions()
	opts.SkipFactor = true
	compiled, err := Compile(core.NewContext(nil, nil, opts), ast.NewGrammar("Factorings", rules...))
	require.NoError(t, err)
	interp, err := eval.New(compiled, nil)
	require.NoError(t, err)

	var rows bytes.Buffer
	for _, rule := range rules {
		for _, src := range inputs() {
			in := rt.NewScanner(src)
			result, err := interp.Evaluate(in, rule.Name)
			require.NoError(t, err)
			fmt.Fprintf(&rows, "\t{%q, %q, %v, %v},\n", rule.Name, src, result.OK(), in.Position())
		}
	}
	return rows.String()
}

// TestGeneratedParserRuns builds a generated parser and runs it, so that the runtime behavior of the emitted code is
// checked rather than only its shape.
func TestGeneratedParserRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping build of a generated parser in short mode")
	}
	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("no go toolchain on PATH")
	}

	src, err := Generate(core.NewContext(nil, nil, nil), behaviors())
	require.NoError(t, err)

	// The package must live inside the module to import the runtime.
	dir, cleanup := testutil.TempDirIn(t, ".", "generated")
	defer cleanup()
	testutil.WriteFile(t, dir, "behaviors.go", string(src))
	testutil.WriteFile(t, dir, "behaviors_test.go", fmt.Sprintf(behaviorsTest, verdicts(t)))

	testutil.RunCommand(t, "go test", dir, goTool, "test", "-count=1", ".")
}
