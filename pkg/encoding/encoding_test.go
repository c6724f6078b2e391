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
package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/binder"
)

const calcYAML = `
name: Calc
rules:
  - name: Expr
    pattern:
      kind: Choice
      patterns:
        - kind: Sequence
          patterns:
            - kind: Bind
              name: l
              pattern: {kind: Call, name: Expr}
            - {kind: TokenText, text: "+"}
            - kind: Bind
              name: r
              pattern: {kind: Call, name: Num}
            - {kind: Action, code: add}
        - {kind: Call, name: Num}
  - name: Num
    pattern:
      kind: Repeat1
      pattern: {kind: TokenTag, name: digit}
`

func calc() *ast.Grammar {
	return ast.NewGrammar("Calc",
		ast.NewRule("Expr", ast.NewChoice(
			ast.NewSequence(
				ast.NewBind("l", ast.NewCall("Expr", "")),
				ast.NewTokenText("+"),
				ast.NewBind("r", ast.NewCall("Num", "")),
				ast.NewAction("add"),
			),
			ast.NewCall("Num", ""),
		)),
		ast.NewRule("Num", ast.NewRepeat1(ast.NewTokenTag("digit"))),
	)
}

func TestDetect(t *testing.T) {
	t.Parallel()

	m, ext := Detect("calc.yml")
	assert.Equal(t, YAML, m)
	assert.Equal(t, ".yml", ext)

	m, ext = Detect("calc.json")
	assert.Equal(t, JSON, m)
	assert.Equal(t, ".json", ext)

	m, ext = Detect("calc")
	assert.Equal(t, Default(), m)
	assert.Equal(t, YAMLExt, ext)

	m, _ = Detect("calc.peg")
	assert.Nil(t, m)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	g, err := DecodeGrammar(YAML, []byte(calcYAML))
	require.NoError(t, err)
	assert.True(t, ast.EqualGrammars(calc(), g), "decoded:\n%v", ast.RuleString(g.Rules[0]))
	assert.Nil(t, g.Rules[0].Bound)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	src := `{
		"name": "G",
		"rules": [{
			"name": "List",
			"parameters": ["item"],
			"pattern": {
				"kind": "Delimited1",
				"element": {"kind": "Immediate", "code": "item"},
				"delimiter": {"kind": "TokenText", "text": ","}
			}
		}, {
			"name": "Top",
			"pattern": {"kind": "PCall", "name": "List", "patterns": [{"kind": "TokenTag", "name": "alpha"}]}
		}]
	}`
	g, err := DecodeGrammar(JSON, []byte(src))
	require.NoError(t, err)

	expected := ast.NewGrammar("G",
		ast.NewRule("List", ast.NewDelimited1(ast.NewImmediate("item"), ast.NewTokenText(",")), "item"),
		ast.NewRule("Top", ast.NewPCall("List", ast.NewTokenTag("alpha"))),
	)
	assert.True(t, ast.EqualGrammars(expected, g))
}

func TestDecodeCoercesScalars(t *testing.T) {
	t.Parallel()

	src := `
name: G
rules:
  - name: R
    pattern: {kind: Call, name: S, code: 42}
  - name: S
    parameters: [n]
    pattern: {kind: Predicate, code: true}
`
	g, err := DecodeGrammar(YAML, []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "42", g.Rules[0].Pattern.(*ast.Call).Code)
	assert.Equal(t, "true", g.Rules[1].Pattern.(*ast.Predicate).Code)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		expected string
	}{
		{"", "grammar file is empty"},
		{"rules: []", "grammar: missing required field 'name'"},
		{"name: G", "grammar: missing required field 'rules'"},
		{"name: G\nrules: 3", "grammar: field 'rules' must be a list"},
		{"name: G\nrules: [{name: R}]", "rules[0]: missing required field 'pattern'"},
		{"name: G\nrules: [{name: R, pattern: {code: x}}]", "rules[0].pattern: missing required field 'kind'"},
		{"name: G\nrules: [{name: R, pattern: {kind: Star}}]", "rules[0].pattern: unrecognized pattern kind 'Star'"},
		{
			"name: G\nrules: [{name: R, pattern: {kind: Sequence, patterns: [{kind: Bind, name: x}]}}]",
			"rules[0].pattern.patterns[0]: missing required field 'pattern'",
		},
		{"name: G\nrules: [{name: R, pattern: {kind: Optional, pattern: [1]}}]", "rules[0].pattern.pattern"},
		{"name: [G", "invalid YAML file"},
	}
	for _, test := range tests {
		_, err := DecodeGrammar(YAML, []byte(test.src))
		if assert.Error(t, err, test.src) {
			assert.Contains(t, err.Error(), test.expected)
		}
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	t.Parallel()

	for _, m := range []Marshaler{JSON, YAML} {
		b, err := EncodeGrammar(m, calc())
		require.NoError(t, err)
		g, err := DecodeGrammar(m, b)
		require.NoError(t, err)
		assert.True(t, ast.EqualGrammars(calc(), g), "%s", b)
	}
}

func TestEncodeKeepsBound(t *testing.T) {
	t.Parallel()

	g := binder.AnalyzeBindings(ast.NewGrammar("G",
		ast.NewRule("R", ast.NewSequence(
			ast.NewBind("x", ast.NewTokenTag("alpha")),
			ast.NewAction("x"),
		)),
		ast.NewRule("S", ast.NewTokenTag("digit")),
	))

	b, err := EncodeGrammar(YAML, g)
	require.NoError(t, err)
	decoded, err := DecodeGrammar(YAML, b)
	require.NoError(t, err)

	assert.Equal(t, ast.Names{"x"}, decoded.Rules[0].Bound)
	assert.Equal(t, ast.Names{"x"}, decoded.Rules[0].Pattern.GetBound())
	assert.Equal(t, ast.Names{}, decoded.Rules[1].Bound)
	assert.NotNil(t, decoded.Rules[1].Bound)
}

func TestEncodePattern(t *testing.T) {
	t.Parallel()

	obj := EncodePattern(ast.NewCall("R", ""))
	assert.Equal(t, map[string]interface{}{"kind": "Call", "name": "R"}, obj)

	p, err := DecodePattern(obj)
	require.NoError(t, err)
	assert.True(t, ast.Equal(ast.NewCall("R", ""), p))
}
