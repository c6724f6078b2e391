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

// Package eval interprets a compiled grammar directly, without generating code.  It follows exactly the protocol of
// generated parsers, so it doubles as an executable definition of what generated code must do.  Host code fragments
// are supplied as Go functions through Hooks.
package eval

import (
	"reflect"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/rt"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Interpreter can evaluate the rules of a compiled grammar.
type Interpreter interface {
	// Grammar returns the grammar being interpreted.
	Grammar() *ast.Grammar
	// Evaluate runs the named rule against an input, passing it the given arguments.  A mismatch is reported as a
	// failed result, not an error; errors are reserved for calls the grammar cannot make sense of.
	Evaluate(in rt.Input, rule string, args ...interface{}) (rt.Result, error)
}

// New creates an interpreter for a grammar that has been through binding analysis.  Every host code fragment must be
// either served by a hook or be a bare reference to a variable in scope; the ones that are not are returned as errors.
func New(g *ast.Grammar, hooks *Hooks) (Interpreter, error) {
	contract.Require(g != nil, "g")
	if hooks == nil {
		hooks = &Hooks{}
	}

	e := &evaluator{
		g:     g,
		hooks: hooks,
		rules: make(map[string]*ast.Rule),
	}
	var result error
	for _, rule := range g.Rules {
		e.rules[rule.Name] = rule
		if rule.Bound == nil {
			result = multierror.Append(result,
				errors.Errorf("rule '%v' has not been through binding analysis", rule.Name))
			continue
		}
		if err := e.checkCodes(rule); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		return nil, result
	}
	return e, nil
}

type evaluator struct {
	g     *ast.Grammar         // the grammar being interpreted.
	hooks *Hooks               // the host code stand-ins.
	rules map[string]*ast.Rule // the grammar's rules by name.
	in    rt.Input             // the input of the evaluation in progress.

	depth    int // the number of rule invocations currently active.
	maxDepth int // the deepest depth reached so far.
}

var _ Interpreter = (*evaluator)(nil)

func (e *evaluator) Grammar() *ast.Grammar { return e.g }

func (e *evaluator) Evaluate(in rt.Input, rule string, args ...interface{}) (rt.Result, error) {
	contract.Require(in != nil, "in")

	r, has := e.rules[rule]
	if !has {
		return rt.Failed, errors.Errorf("grammar %v has no rule named '%v'", e.g.Name, rule)
	}
	if len(args) != len(r.Parameters) {
		return rt.Failed, errors.Errorf("rule '%v' declares %v parameters, but was passed %v arguments",
			rule, len(r.Parameters), len(args))
	}

	if glog.V(5) {
		glog.V(5).Infof("Evaluating rule %v at position %v", rule, in.Position())
	}
	e.in = in
	e.depth, e.maxDepth = 0, 0
	return e.call(r, args), nil
}

// frame holds the variables of one rule invocation.
type frame struct {
	vars map[string]interface{}
}

func (f *frame) Get(name string) interface{} {
	return f.vars[name]
}

func (f *frame) set(name string, v interface{}) {
	_, has := f.vars[name]
	contract.Assertf(has, "assignment to undeclared variable %v", name)
	f.vars[name] = v
}

func (e *evaluator) call(rule *ast.Rule, args []interface{}) rt.Result {
	e.depth++
	if e.depth > e.maxDepth {
		e.maxDepth = e.depth
	}
	defer func() { e.depth-- }()
	contract.Assertf(len(args) == len(rule.Parameters), "rule %v declares %v parameters, but was passed %v",
		rule.Name, len(rule.Parameters), len(args))

	f := &frame{vars: make(map[string]interface{})}
	for i, param := range rule.Parameters {
		f.vars[param] = args[i]
	}
	for _, name := range rule.Bound {
		f.vars[name] = nil
	}
	return e.eval(f, rule.Pattern)
}

// eval matches a pattern.  Every case mirrors the code the generator emits for the same construct.
func (e *evaluator) eval(f *frame, node ast.Pattern) rt.Result {
	switch n := node.(type) {
	case *ast.Sequence:
		result := rt.Failed
		for _, member := range n.Patterns {
			if result = e.eval(f, member); !result.OK() {
				break
			}
		}
		return result
	case *ast.Choice:
		// The cursor is deliberately left wherever the last alternative stopped when they all fail.
		result := rt.Failed
		pos := e.in.Position()
		for _, alt := range n.Patterns {
			e.in.SetPosition(pos)
			if result = e.eval(f, alt); result.OK() {
				break
			}
		}
		return result
	case *ast.Bind:
		result := e.eval(f, n.Pattern)
		f.set(n.Name, result.Value())
		return result
	case *ast.Negate:
		pos := e.in.Position()
		result := e.eval(f, n.Pattern)
		e.in.SetPosition(pos)
		if result.OK() {
			return rt.Failed
		}
		return rt.Matched(nil)
	case *ast.Lookahead:
		pos := e.in.Position()
		result := e.eval(f, n.Pattern)
		e.in.SetPosition(pos)
		return result
	case *ast.Repeat:
		return rt.Matched(e.repeat(f, n.Pattern))
	case *ast.Repeat1:
		return nonempty(e.repeat(f, n.Pattern))
	case *ast.Delimited:
		return rt.Matched(e.delimited(f, n.Element, n.Delimiter))
	case *ast.Delimited1:
		return nonempty(e.delimited(f, n.Element, n.Delimiter))
	case *ast.Optional:
		pos := e.in.Position()
		result := e.eval(f, n.Pattern)
		if !result.OK() {
			e.in.SetPosition(pos)
			return rt.Matched(nil)
		}
		return result
	case *ast.Immediate:
		if hook, has := e.hooks.Immediates[n.Code]; has {
			return hook(f, e.in)
		}
		return rt.Invoke(f.Get(n.Code))
	case *ast.Action:
		if hook, has := e.hooks.Actions[n.Code]; has {
			return rt.Matched(hook(f))
		}
		return rt.Matched(f.Get(n.Code))
	case *ast.Predicate:
		var ok bool
		if hook, has := e.hooks.Predicates[n.Code]; has {
			ok = hook(f)
		} else {
			ok = rt.Truthy(f.Get(n.Code))
		}
		if ok {
			return rt.Matched(nil)
		}
		return rt.Failed
	case *ast.Call:
		return e.call(e.rule(n.Name), e.args(f, n.Code))
	case *ast.PCall:
		args := make([]interface{}, len(n.Patterns))
		for i, arg := range n.Patterns {
			arg := arg
			args[i] = rt.Thunk(func() rt.Result { return e.eval(f, arg) })
		}
		return e.call(e.rule(n.Name), args)
	case *ast.TokenTag:
		return e.in.Tag(n.Name)
	case *ast.TokenText:
		return e.in.Text(n.Text)
	default:
		contract.Failf("Unrecognized pattern kind during evaluation: %v", reflect.TypeOf(node))
		return rt.Failed
	}
}

// repeat collects matches until the pattern fails, or matches without consuming anything.
func (e *evaluator) repeat(f *frame, p ast.Pattern) rt.List {
	list := rt.List{}
	for {
		pos := e.in.Position()
		result := e.eval(f, p)
		if !result.OK() {
			e.in.SetPosition(pos)
			break
		}
		list = list.Append(result)
		if e.in.Position() == pos {
			break
		}
	}
	return list
}

// delimited collects elements separated by delimiters.  Variables bound by an element that fails after its delimiter
// matched keep whatever values they were given.
func (e *evaluator) delimited(f *frame, elem, delim ast.Pattern) rt.List {
	list := rt.List{}
	for {
		pos := e.in.Position()
		if len(list) > 0 {
			if !e.eval(f, delim).OK() {
				e.in.SetPosition(pos)
				break
			}
		}
		result := e.eval(f, elem)
		if !result.OK() {
			e.in.SetPosition(pos)
			break
		}
		list = list.Append(result)
		if e.in.Position() == pos {
			break
		}
	}
	return list
}

func nonempty(list rt.List) rt.Result {
	if len(list) == 0 {
		return rt.Failed
	}
	return rt.Matched(list)
}

func (e *evaluator) rule(name string) *ast.Rule {
	rule, has := e.rules[name]
	contract.Assertf(has, "call to undefined rule %v", name)
	return rule
}

func (e *evaluator) args(f *frame, code string) []interface{} {
	if code == "" {
		return nil
	}
	if hook, has := e.hooks.Args[code]; has {
		return hook(f)
	}
	names, ok := splitArgs(code)
	contract.Assertf(ok, "unresolved argument code %v", code)
	args := make([]interface{}, len(names))
	for i, name := range names {
		args[i] = f.Get(name)
	}
	return args
}

// checkCodes returns an error for every host code fragment in a rule that the interpreter could not evaluate.
func (e *evaluator) checkCodes(rule *ast.Rule) error {
	scope := make(map[string]bool)
	for _, param := range rule.Parameters {
		scope[param] = true
	}
	for _, name := range rule.Bound {
		scope[name] = true
	}
	inScope := func(code string) bool {
		return isIdentifier(code) && scope[code]
	}

	var result error
	unresolved := func(kind, code string) {
		result = multierror.Append(result,
			errors.Errorf("rule '%v': %v code `%v` has no hook and is not a variable in scope", rule.Name, kind, code))
	}
	ast.Inspect(rule.Pattern, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Action:
			if _, has := e.hooks.Actions[n.Code]; !has && !inScope(n.Code) {
				unresolved("action", n.Code)
			}
		case *ast.Predicate:
			if _, has := e.hooks.Predicates[n.Code]; !has && !inScope(n.Code) {
				unresolved("predicate", n.Code)
			}
		case *ast.Immediate:
			if _, has := e.hooks.Immediates[n.Code]; !has && !inScope(n.Code) {
				unresolved("immediate", n.Code)
			}
		case *ast.Call:
			if e.g.Rule(n.Name) == nil {
				result = multierror.Append(result, errors.Errorf("rule '%v' calls undefined rule '%v'",
					rule.Name, n.Name))
			}
			if _, has := e.hooks.Args[n.Code]; !has && n.Code != "" {
				names, ok := splitArgs(n.Code)
				for _, name := range names {
					ok = ok && scope[name]
				}
				if !ok {
					unresolved("argument", n.Code)
				}
			}
		case *ast.PCall:
			if e.g.Rule(n.Name) == nil {
				result = multierror.Append(result, errors.Errorf("rule '%v' calls undefined rule '%v'",
					rule.Name, n.Name))
			}
		}
		return true
	})
	return result
}
