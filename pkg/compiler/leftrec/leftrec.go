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

// Package leftrec rewrites rules that call themselves in head position into an equivalent loop.
//
// A left recursive rule such as
//
//     Expr := Expr "+" Term | Term
//
// is split into two projections.  The base projection keeps only the alternatives that do not begin with a self call
// (here `Term`); the iter projection keeps only the alternatives that do, with the leading self call replaced by the
// value folded so far (here `LRECRESULT "+" Term`).  The rule then becomes
//
//     LRECRESULT:base (LRECTEMP:iter LRECRESULT:={LRECTEMP})* ={LRECRESULT}
//
// which parses the same language, folds to the left, and never recurses on its own head.
//
// Only direct self recursion is rewritten.  Rules that are left recursive through one another are reported and left
// alone.
package leftrec

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/util/contract"
)

const (
	// Result is the rule-local variable holding the value folded so far.
	Result = "LRECRESULT"
	// Temp is the rule-local variable holding the value of the latest iteration.
	Temp = "LRECTEMP"
)

// Eliminate rewrites every directly left recursive rule in the grammar.  Errors are issued to the context; the
// returned grammar is only meaningful if none were.  The input grammar's rules are consumed.
func Eliminate(ctx *core.Context, g *ast.Grammar) *ast.Grammar {
	contract.Require(g != nil, "g")

	if glog.V(3) {
		glog.V(3).Infof("Eliminating left recursion in grammar %v (rules=%v)", g.Name, len(g.Rules))
	}

	checkMutualRecursion(ctx, g)

	result := &ast.Grammar{Name: g.Name}
	for _, rule := range g.Rules {
		result.Rules = append(result.Rules, EliminateRule(ctx, rule))
	}
	return result
}

// EliminateRule rewrites a single rule if it is directly left recursive, and otherwise returns it unchanged.
func EliminateRule(ctx *core.Context, rule *ast.Rule) *ast.Rule {
	prev := ctx.Currule
	ctx.Currule = rule.Name
	defer func() { ctx.Currule = prev }()

	p := &projector{name: rule.Name}
	base, hasBase := p.base(rule.Pattern, true)
	iter, hasIter := p.iter(rule.Pattern, true)

	if p.selfPCall {
		ctx.Errorf(errors.ErrorLeftRecursivePCall, rule.Name)
		return rule
	}
	if !hasBase {
		ctx.Errorf(errors.ErrorNoBaseCase, rule.Name)
		return rule
	}
	if !hasIter {
		if glog.V(7) {
			glog.V(7).Infof("Rule %v is not left recursive", rule.Name)
		}
		return rule
	}

	if glog.V(5) {
		glog.V(5).Infof("Rule %v is left recursive: base=%v iter=%v", rule.Name, ast.String(base), ast.String(iter))
	}

	return &ast.Rule{
		Name:       rule.Name,
		Parameters: rule.Parameters,
		Pattern: ast.NewSequence(
			ast.NewBind(Result, base),
			ast.NewRepeat(ast.NewSequence(
				ast.NewBind(Temp, iter),
				ast.NewBind(Result, ast.NewAction(Temp)),
			)),
			ast.NewAction(Result),
		),
	}
}

// projector computes the base and iter projections of one rule's pattern.  Both return false in place of a pattern
// that cannot match; every pattern they do return is freshly allocated, so the two projections never share nodes.
type projector struct {
	name      string // the rule whose self calls are being projected away.
	selfPCall bool   // set once the iter projection meets a self PCall in head position.
}

func (p *projector) base(node ast.Pattern, edge bool) (ast.Pattern, bool) {
	switch n := node.(type) {
	case *ast.Choice:
		var patterns []ast.Pattern
		for _, alt := range n.Patterns {
			if b, ok := p.base(alt, edge); ok {
				patterns = append(patterns, b)
			}
		}
		if len(patterns) == 0 {
			return nil, false
		}
		return ast.NewChoice(patterns...), true
	case *ast.Sequence:
		return p.sequence(n, edge, p.base)
	case *ast.Bind:
		if b, ok := p.base(n.Pattern, edge); ok {
			return ast.NewBind(n.Name, b), true
		}
		return nil, false
	case *ast.Negate:
		return p.wrap(n.Pattern, edge, p.base, func(b ast.Pattern) ast.Pattern { return ast.NewNegate(b) })
	case *ast.Lookahead:
		return p.wrap(n.Pattern, edge, p.base, func(b ast.Pattern) ast.Pattern { return ast.NewLookahead(b) })
	case *ast.Repeat:
		return p.wrap(n.Pattern, edge, p.base, func(b ast.Pattern) ast.Pattern { return ast.NewRepeat(b) })
	case *ast.Repeat1:
		return p.wrap(n.Pattern, edge, p.base, func(b ast.Pattern) ast.Pattern { return ast.NewRepeat1(b) })
	case *ast.Optional:
		return p.wrap(n.Pattern, edge, p.base, func(b ast.Pattern) ast.Pattern { return ast.NewOptional(b) })
	case *ast.Delimited:
		elem, delim, ok := p.delimited(n.Element, n.Delimiter, edge, p.base)
		if !ok {
			return nil, false
		}
		return ast.NewDelimited(elem, delim), true
	case *ast.Delimited1:
		elem, delim, ok := p.delimited(n.Element, n.Delimiter, edge, p.base)
		if !ok {
			return nil, false
		}
		return ast.NewDelimited1(elem, delim), true
	case *ast.Immediate:
		return ast.NewImmediate(n.Code), true
	case *ast.Action:
		return ast.NewAction(n.Code), true
	case *ast.Predicate:
		return ast.NewPredicate(n.Code), true
	case *ast.PCall:
		if edge && n.Name == p.name {
			return nil, false
		}
		return ast.NewPCall(n.Name, ast.CloneAll(n.Patterns)...), true
	case *ast.Call:
		if edge && n.Name == p.name {
			return nil, false
		}
		return ast.NewCall(n.Name, n.Code), true
	case *ast.TokenTag:
		return ast.NewTokenTag(n.Name), true
	case *ast.TokenText:
		return ast.NewTokenText(n.Text), true
	default:
		contract.Failf("Unrecognized pattern kind in base projection: %v", reflect.TypeOf(node))
		return nil, false
	}
}

func (p *projector) iter(node ast.Pattern, edge bool) (ast.Pattern, bool) {
	switch n := node.(type) {
	case *ast.Choice:
		var patterns []ast.Pattern
		for _, alt := range n.Patterns {
			if it, ok := p.iter(alt, edge); ok {
				patterns = append(patterns, it)
			}
		}
		if len(patterns) == 0 {
			return nil, false
		}
		return ast.NewChoice(patterns...), true
	case *ast.Sequence:
		return p.sequence(n, edge, p.iter)
	case *ast.Bind:
		if it, ok := p.iter(n.Pattern, edge); ok {
			return ast.NewBind(n.Name, it), true
		}
		return nil, false
	case *ast.Negate:
		return p.wrap(n.Pattern, edge, p.iter, func(it ast.Pattern) ast.Pattern { return ast.NewNegate(it) })
	case *ast.Lookahead:
		return p.wrap(n.Pattern, edge, p.iter, func(it ast.Pattern) ast.Pattern { return ast.NewLookahead(it) })
	case *ast.Repeat:
		return p.wrap(n.Pattern, edge, p.iter, func(it ast.Pattern) ast.Pattern { return ast.NewRepeat(it) })
	case *ast.Repeat1:
		return p.wrap(n.Pattern, edge, p.iter, func(it ast.Pattern) ast.Pattern { return ast.NewRepeat1(it) })
	case *ast.Optional:
		return p.wrap(n.Pattern, edge, p.iter, func(it ast.Pattern) ast.Pattern { return ast.NewOptional(it) })
	case *ast.Delimited:
		elem, delim, ok := p.delimited(n.Element, n.Delimiter, edge, p.iter)
		if !ok {
			return nil, false
		}
		return ast.NewDelimited(elem, delim), true
	case *ast.Delimited1:
		elem, delim, ok := p.delimited(n.Element, n.Delimiter, edge, p.iter)
		if !ok {
			return nil, false
		}
		return ast.NewDelimited1(elem, delim), true
	case *ast.Immediate:
		if edge {
			return nil, false
		}
		return ast.NewImmediate(n.Code), true
	case *ast.Action:
		if edge {
			return nil, false
		}
		return ast.NewAction(n.Code), true
	case *ast.Predicate:
		if edge {
			return nil, false
		}
		return ast.NewPredicate(n.Code), true
	case *ast.PCall:
		if !edge {
			return ast.NewPCall(n.Name, ast.CloneAll(n.Patterns)...), true
		}
		if n.Name == p.name {
			p.selfPCall = true
		}
		return nil, false
	case *ast.Call:
		if !edge {
			return ast.NewCall(n.Name, n.Code), true
		}
		if n.Name == p.name {
			return ast.NewAction(Result), true
		}
		return nil, false
	case *ast.TokenTag:
		if edge {
			return nil, false
		}
		return ast.NewTokenTag(n.Name), true
	case *ast.TokenText:
		if edge {
			return nil, false
		}
		return ast.NewTokenText(n.Text), true
	default:
		contract.Failf("Unrecognized pattern kind in iter projection: %v", reflect.TypeOf(node))
		return nil, false
	}
}

type projection func(node ast.Pattern, edge bool) (ast.Pattern, bool)

// sequence projects a sequence.  Only the first member can be in head position, and the whole sequence is dropped iff
// that member is.
func (p *projector) sequence(n *ast.Sequence, edge bool, project projection) (ast.Pattern, bool) {
	patterns := make([]ast.Pattern, 0, len(n.Patterns))
	for i, member := range n.Patterns {
		projected, ok := project(member, edge && i == 0)
		if !ok {
			// Later members are never in head position, and neither projection drops a non-head pattern.
			contract.Assertf(i == 0, "non-head sequence member %v was dropped", i)
			return nil, false
		}
		patterns = append(patterns, projected)
	}
	if len(patterns) == 0 {
		return nil, false
	}
	return ast.NewSequence(patterns...), true
}

func (p *projector) wrap(child ast.Pattern, edge bool, project projection,
	mk func(ast.Pattern) ast.Pattern) (ast.Pattern, bool) {
	if projected, ok := project(child, edge); ok {
		return mk(projected), true
	}
	return nil, false
}

// delimited projects a delimited list.  The delimiter only ever runs after an element, so it is never in head position.
func (p *projector) delimited(elem, delim ast.Pattern, edge bool, project projection) (ast.Pattern, ast.Pattern, bool) {
	e, ok := project(elem, edge)
	if !ok {
		return nil, nil, false
	}
	d, ok := project(delim, false)
	contract.Assertf(ok, "delimiter projection dropped a non-head pattern")
	return e, d, true
}
