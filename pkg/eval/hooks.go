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

package eval

import (
	"regexp"
	"strings"

	"github.com/pulumi/pegc/pkg/rt"
)

// Hooks supply the Go functions that stand in for the host code fragments of a grammar.  Each map is keyed by the
// exact code string of the pattern it serves.  A code that is a bare identifier naming a bound variable or a rule
// parameter needs no hook: it evaluates to that variable's value.
type Hooks struct {
	Actions    map[string]ActionFunc    // values of Action patterns.
	Predicates map[string]PredicateFunc // conditions of Predicate patterns.
	Immediates map[string]ImmediateFunc // recognizers of Immediate patterns.
	Args       map[string]ArgsFunc      // argument lists of Call patterns.
}

// Env exposes the variables of the rule invocation a hook runs in.
type Env interface {
	// Get returns the current value of a bound variable or parameter.  Unassigned variables are nil.
	Get(name string) interface{}
}

// ActionFunc computes the value of an Action.
type ActionFunc func(env Env) interface{}

// PredicateFunc decides a Predicate.
type PredicateFunc func(env Env) bool

// ImmediateFunc is a recognizer that may consume input.
type ImmediateFunc func(env Env, in rt.Input) rt.Result

// ArgsFunc computes the arguments of a Call.
type ArgsFunc func(env Env) []interface{}

var identifier = regexp.MustCompile(`^[\pL_][\pL\pN_]*$`)

// isIdentifier returns true if code is a bare variable reference.
func isIdentifier(code string) bool {
	return identifier.MatchString(code)
}

// splitArgs splits a Call's argument code into identifiers, returning false if it is anything more complicated.
func splitArgs(code string) ([]string, bool) {
	var names []string
	for _, arg := range strings.Split(code, ",") {
		arg = strings.TrimSpace(arg)
		if !isIdentifier(arg) {
			return nil, false
		}
		names = append(names, arg)
	}
	return names, true
}
