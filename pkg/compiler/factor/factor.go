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

// Package factor merges choice alternatives that begin with the same pattern, so that a generated parser matches a
// shared prefix once rather than once per alternative.  Which alternative wins is never changed for any input.
package factor

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Factor left factors every rule in the grammar.  The input grammar's rules are consumed.
func Factor(g *ast.Grammar) *ast.Grammar {
	contract.Require(g != nil, "g")

	if glog.V(3) {
		glog.V(3).Infof("Left factoring grammar %v (rules=%v)", g.Name, len(g.Rules))
	}

	result := &ast.Grammar{Name: g.Name}
	for _, rule := range g.Rules {
		result.Rules = append(result.Rules, &ast.Rule{
			Name:       rule.Name,
			Parameters: rule.Parameters,
			Pattern:    Pattern(rule.Pattern),
		})
	}
	return result
}

// Pattern left factors a pattern tree and returns its replacement.
func Pattern(node ast.Pattern) ast.Pattern {
	switch n := node.(type) {
	case *ast.Choice:
		return choice(n)
	case *ast.Sequence:
		n.Patterns = patterns(n.Patterns)
	case *ast.PCall:
		n.Patterns = patterns(n.Patterns)
	case *ast.Bind:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Negate:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Lookahead:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Repeat:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Repeat1:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Optional:
		n.Pattern = Pattern(n.Pattern)
	case *ast.Delimited:
		n.Element = Pattern(n.Element)
		n.Delimiter = Pattern(n.Delimiter)
	case *ast.Delimited1:
		n.Element = Pattern(n.Element)
		n.Delimiter = Pattern(n.Delimiter)
	case *ast.Immediate, *ast.Action, *ast.Predicate, *ast.Call, *ast.TokenTag, *ast.TokenText:
		// Nothing to factor.
	default:
		contract.Failf("Unrecognized pattern kind during left factoring: %v", reflect.TypeOf(node))
	}
	return node
}

func patterns(ps []ast.Pattern) []ast.Pattern {
	for i, p := range ps {
		ps[i] = Pattern(p)
	}
	return ps
}

// group collects the alternatives of a choice that start with structurally equal heads.
type group struct {
	head  ast.Pattern
	tails [][]ast.Pattern
}

// hasCollision reports whether the group both ends an alternative at its head and continues another one past it, as in
// `a | a b`.  Merging those would need a decision point after the head that a plain choice cannot express.
func (g *group) hasCollision() bool {
	if len(g.tails) < 2 {
		return false
	}
	for _, tail := range g.tails {
		if len(tail) == 0 {
			return true
		}
	}
	return false
}

func choice(n *ast.Choice) ast.Pattern {
	// Treat every alternative as a list of components, and bucket runs of neighboring alternatives by their first
	// component.  Only neighbors are merged: pulling a later alternative forward past a different one would let it win
	// on inputs where the one in between used to.
	var groups []*group
	for _, alt := range n.Patterns {
		branch := []ast.Pattern{alt}
		if seq, isseq := alt.(*ast.Sequence); isseq {
			branch = seq.Patterns
		}
		contract.Assertf(len(branch) > 0, "empty sequence alternative")

		var target *group
		if len(groups) > 0 && ast.Equal(groups[len(groups)-1].head, branch[0]) {
			target = groups[len(groups)-1]
		}
		if target == nil {
			target = &group{head: branch[0]}
			groups = append(groups, target)
		}
		target.tails = append(target.tails, branch[1:])
	}

	for _, g := range groups {
		if g.hasCollision() {
			if glog.V(7) {
				glog.V(7).Infof("Not factoring choice %v: head %v both ends and continues an alternative",
					ast.String(n), ast.String(g.head))
			}
			n.Patterns = patterns(n.Patterns)
			return n
		}
	}

	result := &ast.Choice{}
	for _, g := range groups {
		var branch ast.Pattern
		switch {
		case len(g.tails) == 1 && len(g.tails[0]) == 0:
			branch = g.head
		case len(g.tails) == 1:
			branch = ast.NewSequence(append([]ast.Pattern{g.head}, g.tails[0]...)...)
		default:
			alts := make([]ast.Pattern, len(g.tails))
			for i, tail := range g.tails {
				alts[i] = ast.NewSequence(tail...)
			}
			branch = ast.NewSequence(g.head, ast.NewChoice(alts...))
			if glog.V(7) {
				glog.V(7).Infof("Factored %v alternatives sharing head %v", len(g.tails), ast.String(g.head))
			}
		}
		result.Patterns = append(result.Patterns, branch)
	}

	// Now factor inside of every branch, which also picks up the prefixes the new tail choices share.
	result.Patterns = patterns(result.Patterns)
	return result
}
