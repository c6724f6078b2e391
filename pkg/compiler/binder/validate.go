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

package binder

import (
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/rt"
)

// maxSuggestionDistance is the largest edit distance at which an undefined rule name suggests a defined one.
const maxSuggestionDistance = 2

// Validate checks that a grammar is well formed before any pass rewrites it.  Rule names must be unique, every rule
// a grammar invokes must exist and be passed as many arguments as it declares parameters, and choices and sequences
// must not be empty.  A scannerless grammar may only match the character classes its scanner knows.  Problems are
// issued to the context.
func Validate(ctx *core.Context, g *ast.Grammar) {
	if glog.V(3) {
		glog.V(3).Infof("Validating grammar %v (rules=%v)", g.Name, len(g.Rules))
	}

	rules := make(map[string]*ast.Rule)
	for _, rule := range g.Rules {
		if rule.Name == "" {
			ctx.Errorf(errors.ErrorMissingRuleName)
			continue
		}
		if _, has := rules[rule.Name]; has {
			ctx.Errorf(errors.ErrorDuplicateRule.WithRule(rule.Name), rule.Name)
			continue
		}
		rules[rule.Name] = rule
	}

	for _, rule := range g.Rules {
		prev := ctx.Currule
		ctx.Currule = rule.Name
		validateRule(ctx, rules, rule)
		ctx.Currule = prev
	}
}

func validateRule(ctx *core.Context, rules map[string]*ast.Rule, rule *ast.Rule) {
	params := make(map[string]bool)
	for _, param := range rule.Parameters {
		if params[param] {
			ctx.Errorf(errors.ErrorDuplicateParameter, param)
		}
		params[param] = true
	}

	if rule.Pattern == nil {
		ctx.Errorf(errors.ErrorMissingPattern, rule.Name)
		return
	}

	ast.Walk(&validator{ctx: ctx, rules: rules, tokens: ctx.Opts.TokenMode}, rule.Pattern)
}

type validator struct {
	ctx    *core.Context
	rules  map[string]*ast.Rule
	tokens bool // true if tags name tokens rather than character classes.
}

var _ ast.Visitor = (*validator)(nil)

func (v *validator) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.Choice:
		if len(n.Patterns) == 0 {
			v.ctx.Errorf(errors.ErrorEmptyComposite, ast.ChoiceKind)
		}
	case *ast.Sequence:
		if len(n.Patterns) == 0 {
			v.ctx.Errorf(errors.ErrorEmptyComposite, ast.SequenceKind)
		}
	case *ast.TokenTag:
		if !v.tokens && !rt.IsCharClass(n.Name) {
			v.ctx.Errorf(errors.ErrorUnknownCharClass, n.Name, strings.Join(rt.CharClasses(), ", "))
		}
	case *ast.PCall:
		if callee := v.resolve(n.Name); callee != nil && len(callee.Parameters) != len(n.Patterns) {
			v.ctx.Errorf(errors.ErrorPCallArityMismatch, n.Name, len(callee.Parameters), len(n.Patterns))
		}
	case *ast.Call:
		if callee := v.resolve(n.Name); callee != nil {
			// A call passes its code as a single argument expression, or nothing at all when the code is empty.
			args := 0
			if n.Code != "" {
				args = 1
			}
			if (args == 0) != (len(callee.Parameters) == 0) {
				v.ctx.Errorf(errors.ErrorCallArityMismatch, n.Name, len(callee.Parameters), args)
			}
		}
	}
	return v
}

func (v *validator) After(node ast.Node) {}

// resolve looks up a rule by name, issuing an error and returning nil if there isn't one.
func (v *validator) resolve(name string) *ast.Rule {
	if rule, has := v.rules[name]; has {
		return rule
	}
	if suggestion := v.closestRule(name); suggestion != "" {
		v.ctx.Errorf(errors.ErrorUndefinedRuleSuggest, name, suggestion)
	} else {
		v.ctx.Errorf(errors.ErrorUndefinedRule, name)
	}
	return nil
}

// closestRule finds the defined rule name closest to the given one, where "closest" means the smallest Levenshtein
// distance.  Ties go to the name that sorts first, so the suggestion is deterministic.
func (v *validator) closestRule(name string) string {
	names := make([]string, 0, len(v.rules))
	for n := range v.rules {
		names = append(names, n)
	}
	sort.Strings(names)

	match := ""
	closest := maxSuggestionDistance + 1
	for _, candidate := range names {
		d := levenshtein.DistanceForStrings(
			[]rune(strings.ToLower(name)),
			[]rune(strings.ToLower(candidate)),
			levenshtein.DefaultOptions,
		)
		if d < closest {
			closest = d
			match = candidate
		}
	}
	return match
}
