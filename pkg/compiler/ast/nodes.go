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

// Package ast contains the grammar AST types.  A grammar is a list of named rules, each of which owns a tree of
// patterns.  Rules refer to one another only by name, so the tree never contains cycles and no pattern is ever shared
// between two parents.
//
// The set of node kinds is closed.  Every pass over the tree switches on the concrete node type and treats anything it
// does not recognize as an invariant violation.  Passes never mutate a node into a different kind; they return a
// replacement that the caller installs in the parent's slot.
package ast

// Node is a discriminated type for all grammar AST nodes.
type Node interface {
	nd()
	GetKind() NodeKind // the node kind.
}

// NodeKind is a type discriminator, indicating what sort of kind a node instance represents.  It is also the `kind`
// field in the serialized form of a grammar.
type NodeKind string

// Grammar is the root of a grammar AST; it owns all of its rules.
type Grammar struct {
	Name  string  `json:"name" yaml:"name"`
	Rules []*Rule `json:"rules" yaml:"rules"`
}

var _ Node = (*Grammar)(nil)

const GrammarKind NodeKind = "Grammar"

func (node *Grammar) nd()               {}
func (node *Grammar) GetKind() NodeKind { return GrammarKind }

// Rule looks up a rule by name, returning nil if no such rule exists.
func (node *Grammar) Rule(name string) *Rule {
	for _, rule := range node.Rules {
		if rule.Name == name {
			return rule
		}
	}
	return nil
}

// Rule is a single named production.  Parameters name the arguments a rule accepts; for a rule invoked by a PCall they
// are the deferred sub-parsers passed in by the caller.
type Rule struct {
	Name       string   `json:"name" yaml:"name"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Pattern    Pattern  `json:"pattern" yaml:"pattern"`
	Bound      Names    `json:"bound,omitempty" yaml:"bound,omitempty"`
}

var _ Node = (*Rule)(nil)

const RuleKind NodeKind = "Rule"

func (node *Rule) nd()               {}
func (node *Rule) GetKind() NodeKind { return RuleKind }
