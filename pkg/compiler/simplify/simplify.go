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

// Package simplify flattens nested choices and sequences and unwraps the single-member ones that the earlier passes
// leave behind.
package simplify

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Simplify simplifies every rule in the grammar.  The input grammar's rules are consumed.
func Simplify(g *ast.Grammar) *ast.Grammar {
	contract.Require(g != nil, "g")

	if glog.V(3) {
		glog.V(3).Infof("Simplifying grammar %v (rules=%v)", g.Name, len(g.Rules))
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

// Pattern simplifies a pattern tree bottom up and returns its replacement.  Simplifying an already simplified tree
// yields an equal tree.
func Pattern(node ast.Pattern) ast.Pattern {
	switch n := node.(type) {
	case *ast.Choice:
		flattened := flatten(n.Patterns, func(p ast.Pattern) ([]ast.Pattern, bool) {
			if c, ok := p.(*ast.Choice); ok {
				return c.Patterns, true
			}
			return nil, false
		})
		if len(flattened) == 1 {
			return flattened[0]
		}
		return &ast.Choice{Patterns: flattened}
	case *ast.Sequence:
		flattened := flatten(n.Patterns, func(p ast.Pattern) ([]ast.Pattern, bool) {
			if s, ok := p.(*ast.Sequence); ok {
				return s.Patterns, true
			}
			return nil, false
		})
		if len(flattened) == 1 {
			return flattened[0]
		}
		return &ast.Sequence{Patterns: flattened}
	case *ast.PCall:
		for i, p := range n.Patterns {
			n.Patterns[i] = Pattern(p)
		}
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
		// Nothing to simplify.
	default:
		contract.Failf("Unrecognized pattern kind during simplification: %v", reflect.TypeOf(node))
	}
	return node
}

// flatten simplifies each member and splices in the members of any that are of the same associative kind.  Members
// are simplified first, so a spliced member never itself contains a member of its own kind.
func flatten(members []ast.Pattern, splice func(ast.Pattern) ([]ast.Pattern, bool)) []ast.Pattern {
	var flattened []ast.Pattern
	for _, member := range members {
		simplified := Pattern(member)
		if inner, ok := splice(simplified); ok {
			flattened = append(flattened, inner...)
		} else {
			flattened = append(flattened, simplified)
		}
	}
	return flattened
}
