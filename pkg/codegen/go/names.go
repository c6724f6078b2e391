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

package gen

import (
	"go/token"
	"regexp"
	"unicode"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
)

type stringSet map[string]struct{}

func newStringSet(s ...string) stringSet {
	ss := stringSet{}
	for _, s := range s {
		ss.add(s)
	}
	return ss
}

func (ss stringSet) add(s string) {
	ss[s] = struct{}{}
}

func (ss stringSet) has(s string) bool {
	_, ok := ss[s]
	return ok
}

// reservedMethods are the methods every generated parser gets from its embedded input.
var reservedMethods = newStringSet(
	"AtEnd", "Position", "Remaining", "Scanner", "SetPosition", "Tag", "Text", "TokenStream",
)

// reservedLocals are the identifiers generated rule bodies refer to, and so must not be shadowed by a variable.
var reservedLocals = newStringSet(receiver, result, "rt", "len", "nil")

// temporaries matches the names of the numbered locals generated code declares.
var temporaries = regexp.MustCompile(`^(` + initpos + `|` + array + `)[0-9]+$`)

// isIdentifier returns true if s can name a Go variable, method or type.
func isIdentifier(s string) bool {
	if s == "" || s == "_" || token.Lookup(s).IsKeyword() {
		return false
	}
	for i, c := range s {
		if !unicode.IsLetter(c) && c != '_' && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}
	return true
}

func isReservedLocal(s string) bool {
	return reservedLocals.has(s) || temporaries.MatchString(s)
}

// checkNames reports every name in the grammar that would not survive being pasted into Go source.
func checkNames(ctx *core.Context, g *ast.Grammar) {
	if !isIdentifier(ctx.Opts.Package) {
		ctx.Errorf(errors.ErrorIllegalPackage, ctx.Opts.Package)
	}
	if typ := ctx.Opts.ParserType(g.Name); !isIdentifier(typ) || typ == "rt" {
		ctx.Errorf(errors.ErrorIllegalTypeName, typ)
	}

	for _, rule := range g.Rules {
		ctx.Currule = rule.Name
		if !isIdentifier(rule.Name) || reservedMethods.has(rule.Name) {
			ctx.Errorf(errors.ErrorIllegalRuleName, rule.Name)
		}

		params := newStringSet()
		for _, param := range rule.Parameters {
			if !isIdentifier(param) || isReservedLocal(param) {
				ctx.Errorf(errors.ErrorIllegalParameter, param)
			}
			params.add(param)
		}

		for _, name := range boundNames(rule) {
			switch {
			case !isIdentifier(name):
				ctx.Errorf(errors.ErrorIllegalBindName, name)
			case isReservedLocal(name):
				ctx.Errorf(errors.ErrorReservedBindName, name)
			case params.has(name):
				ctx.Errorf(errors.ErrorBindIsParameter, name)
			}
		}
	}
	ctx.Currule = ""
}

// boundNames returns the variables a rule method must declare.
func boundNames(rule *ast.Rule) ast.Names {
	if rule.Bound != nil {
		return rule.Bound
	}
	if rule.Pattern != nil {
		return rule.Pattern.GetBound()
	}
	return nil
}
