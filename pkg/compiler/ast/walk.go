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

package ast

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/pegc/pkg/util/contract"
)

// Visitor is a pluggable interface invoked during walks of an AST.
type Visitor interface {
	// Visit visits the given AST node.  If it returns nil, the calling code will stop visiting immediately after the
	// call to Visit returns.  If it returns a non-nil Visitor, the calling code will continue visiting.  The order in
	// which nodes are visitied is specific to the specific visitation API being used.
	Visit(node Node) Visitor

	// After is invoked after visitation of a given node.
	After(node Node)
}

// Walk visits an AST node and all of its children.  It walks the AST in depth-first order.  A pre- and/or
// post-visitation Visitor object may be supplied in order to hook into this walk at the right moments.
func Walk(v Visitor, node Node) {
	contract.Requiref(node != nil, "node", "!= nil")

	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: pre-visit %v", reflect.TypeOf(node))
	}

	// First visit the node; only proceed if the visitor says to do so (and use its returned visitor below).
	if v = v.Visit(node); v == nil {
		return
	}

	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: post-visit, pre-recurse %v", reflect.TypeOf(node))
	}

	// Switch on the node type and walk any children.  The order in which children are walked is the order in which a
	// generated parser would attempt them.
	switch n := node.(type) {
	case *Grammar:
		for _, rule := range n.Rules {
			Walk(v, rule)
		}
	case *Rule:
		Walk(v, n.Pattern)
	case *Choice:
		for _, p := range n.Patterns {
			Walk(v, p)
		}
	case *Sequence:
		for _, p := range n.Patterns {
			Walk(v, p)
		}
	case *PCall:
		for _, p := range n.Patterns {
			Walk(v, p)
		}
	case *Bind:
		Walk(v, n.Pattern)
	case *Negate:
		Walk(v, n.Pattern)
	case *Lookahead:
		Walk(v, n.Pattern)
	case *Repeat:
		Walk(v, n.Pattern)
	case *Repeat1:
		Walk(v, n.Pattern)
	case *Optional:
		Walk(v, n.Pattern)
	case *Delimited:
		Walk(v, n.Element)
		Walk(v, n.Delimiter)
	case *Delimited1:
		Walk(v, n.Element)
		Walk(v, n.Delimiter)
	case *Immediate, *Action, *Predicate, *Call, *TokenTag, *TokenText:
		// No children, nothing to do.
	default:
		contract.Failf("Unrecognized AST node during walk: %v", reflect.TypeOf(node))
	}

	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: post-recurse %v", reflect.TypeOf(node))
	}

	// Finally let the visitor know that we are going up on the way back out.
	v.After(node)
}

// Inspect walks the tree rooted at node, calling f before visiting each node's children.  If f returns false, the
// node's children are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

func (f inspector) After(node Node) {}
