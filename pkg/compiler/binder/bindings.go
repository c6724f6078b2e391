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

// Package binder resolves names in a grammar.  It validates that every rule a grammar refers to exists and is invoked
// with the right number of arguments, and it computes the variables each pattern may bind.
package binder

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// AnalyzeBindings records on every node of the grammar the names its execution may bind.  It must run after every
// pass that adds or moves Bind nodes, since it does not track later changes.
//
// A choice or sequence binds the union of its members' names, including members that a given parse never reaches,
// because the parser declares all of a rule's names before it runs any of them.
func AnalyzeBindings(g *ast.Grammar) *ast.Grammar {
	contract.Require(g != nil, "g")

	if glog.V(3) {
		glog.V(3).Infof("Analyzing bindings in grammar %v (rules=%v)", g.Name, len(g.Rules))
	}

	ast.Walk(&bindingsVisitor{}, g)
	return g
}

type bindingsVisitor struct{}

var _ ast.Visitor = (*bindingsVisitor)(nil)

func (visitor *bindingsVisitor) Visit(node ast.Node) ast.Visitor {
	return visitor
}

// After computes each node's names once its children's are known, so the walk yields a post-order analysis.
func (visitor *bindingsVisitor) After(node ast.Node) {
	switch n := node.(type) {
	case *ast.Grammar:
		// Nothing to record.
	case *ast.Rule:
		n.Bound = n.Pattern.GetBound()
		if glog.V(7) {
			glog.V(7).Infof("Rule %v binds %v", n.Name, n.Bound)
		}
	case *ast.Choice:
		n.SetBound(unionAll(n.Patterns))
	case *ast.Sequence:
		n.SetBound(unionAll(n.Patterns))
	case *ast.PCall:
		n.SetBound(unionAll(n.Patterns))
	case *ast.Bind:
		n.SetBound(n.Pattern.GetBound().Add(n.Name))
	case *ast.Negate:
		n.SetBound(n.Pattern.GetBound())
	case *ast.Lookahead:
		n.SetBound(n.Pattern.GetBound())
	case *ast.Repeat:
		n.SetBound(n.Pattern.GetBound())
	case *ast.Repeat1:
		n.SetBound(n.Pattern.GetBound())
	case *ast.Optional:
		n.SetBound(n.Pattern.GetBound())
	case *ast.Delimited:
		n.SetBound(ast.Union(n.Element.GetBound(), n.Delimiter.GetBound()))
	case *ast.Delimited1:
		n.SetBound(ast.Union(n.Element.GetBound(), n.Delimiter.GetBound()))
	case *ast.Immediate, *ast.Action, *ast.Predicate, *ast.Call, *ast.TokenTag, *ast.TokenText:
		node.(ast.Pattern).SetBound(ast.Names{})
	default:
		contract.Failf("Unrecognized AST node during binding analysis: %v", reflect.TypeOf(node))
	}
}

func unionAll(ps []ast.Pattern) ast.Names {
	bound := ast.Names{}
	for _, p := range ps {
		bound = ast.Union(bound, p.GetBound())
	}
	return bound
}
