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

package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulumi/pegc/pkg/compiler/ast"
)

func tag(name string) *ast.TokenTag { return ast.NewTokenTag(name) }

func seq(ps ...ast.Pattern) *ast.Sequence { return ast.NewSequence(ps...) }

func alt(ps ...ast.Pattern) *ast.Choice { return ast.NewChoice(ps...) }

func assertPattern(t *testing.T, expected, actual ast.Pattern) {
	assert.True(t, ast.Equal(expected, actual), "expected %v, got %v", ast.String(expected), ast.String(actual))
}

func TestFactorSharedHead(t *testing.T) {
	t.Parallel()

	// A B | A C  =>  A (B | C)
	p := alt(seq(tag("A"), tag("B")), seq(tag("A"), tag("C")))
	assertPattern(t, alt(seq(tag("A"), alt(seq(tag("B")), seq(tag("C"))))), Pattern(p))
}

func TestFactorEmptyTailCollisionLeavesChoiceAlone(t *testing.T) {
	t.Parallel()

	// A | A B stays as it is.
	p := alt(tag("A"), seq(tag("A"), tag("B")))
	before := ast.Clone(p)
	assertPattern(t, before, Pattern(p))
}

func TestFactorCollisionStillFactorsChildren(t *testing.T) {
	t.Parallel()

	// A | A (X Y | X Z): the outer choice is left alone, but the inner one is factored.
	inner := alt(seq(tag("X"), tag("Y")), seq(tag("X"), tag("Z")))
	p := alt(tag("A"), seq(tag("A"), inner))
	expected := alt(tag("A"), seq(tag("A"), alt(seq(tag("X"), alt(seq(tag("Y")), seq(tag("Z")))))))
	assertPattern(t, expected, Pattern(p))
}

func TestFactorNestedPrefixes(t *testing.T) {
	t.Parallel()

	// A B C | A B D  =>  A (B (C | D))
	p := alt(seq(tag("A"), tag("B"), tag("C")), seq(tag("A"), tag("B"), tag("D")))
	expected := alt(seq(tag("A"), alt(seq(tag("B"), alt(seq(tag("C")), seq(tag("D")))))))
	assertPattern(t, expected, Pattern(p))
}

func TestFactorKeepsDistinctHeadsInOrder(t *testing.T) {
	t.Parallel()

	// A B | C | A D: the two A alternatives are not neighbors, so nothing moves.
	p := alt(seq(tag("A"), tag("B")), tag("C"), seq(tag("A"), tag("D")))
	before := ast.Clone(p)
	assertPattern(t, before, Pattern(p))

	// A B | A D | C  =>  A (B | D) | C
	p = alt(seq(tag("A"), tag("B")), seq(tag("A"), tag("D")), tag("C"))
	assertPattern(t, alt(seq(tag("A"), alt(seq(tag("B")), seq(tag("D")))), tag("C")), Pattern(p))
}

func TestFactorUsesStructuralEquality(t *testing.T) {
	t.Parallel()

	p := alt(
		seq(ast.NewBind("x", ast.NewCall("Num", "")), ast.NewTokenText("+")),
		seq(ast.NewBind("x", ast.NewCall("Num", "")), ast.NewTokenText("-")),
		seq(ast.NewBind("y", ast.NewCall("Num", "")), ast.NewTokenText("*")),
	)
	expected := alt(
		seq(ast.NewBind("x", ast.NewCall("Num", "")),
			alt(seq(ast.NewTokenText("+")), seq(ast.NewTokenText("-")))),
		seq(ast.NewBind("y", ast.NewCall("Num", "")), ast.NewTokenText("*")),
	)
	assertPattern(t, expected, Pattern(p))
}

func TestFactorRecursesThroughWrappers(t *testing.T) {
	t.Parallel()

	p := ast.NewRepeat(ast.NewDelimited(
		alt(seq(tag("A"), tag("B")), seq(tag("A"), tag("C"))),
		ast.NewPCall("Sep", alt(seq(tag("X"), tag("Y")), seq(tag("X"), tag("Z")))),
	))
	expected := ast.NewRepeat(ast.NewDelimited(
		alt(seq(tag("A"), alt(seq(tag("B")), seq(tag("C"))))),
		ast.NewPCall("Sep", alt(seq(tag("X"), alt(seq(tag("Y")), seq(tag("Z")))))),
	))
	assertPattern(t, expected, Pattern(p))
}

func TestFactorGrammar(t *testing.T) {
	t.Parallel()

	g := ast.NewGrammar("G", ast.NewRule("R", alt(seq(tag("A"), tag("B")), seq(tag("A"), tag("C"))), "p"))
	result := Factor(g)
	assert.Equal(t, "G", result.Name)
	assert.Equal(t, []string{"p"}, result.Rules[0].Parameters)
	assertPattern(t, alt(seq(tag("A"), alt(seq(tag("B")), seq(tag("C"))))), result.Rules[0].Pattern)
}
