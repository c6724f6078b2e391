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

// Package gen emits Go source for a compiled grammar.  The output is one file holding a parser type and a method per
// rule.  Every method follows the same protocol: a result register starts out failed, each construct leaves its
// outcome in the register, and the method returns whatever the register holds at the end.  Constructs that may need
// to stop early are wrapped in a `for { ... break }` block so that a failure can `break` out of just that construct.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"reflect"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	pegerrors "github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/util/contract"
	"github.com/pulumi/pegc/pkg/version"
)

// Identifiers that generated code declares or refers to.
const (
	receiver = "p"       // the parser receiver of every rule method.
	result   = "RESULT"  // the result register.
	initpos  = "INITPOS" // prefix of saved cursor positions.
	array    = "ARRAY"   // prefix of the lists repetitions collect.
)

// Generate emits the parser for a grammar that has been through every compiler pass, so that every node carries its
// bound names.  Problems with the grammar's names are issued to the context and returned as an error.  If the
// generated source cannot be formatted, which happens when host code in the grammar is not a valid Go expression, the
// unformatted source is returned alongside the error.
func Generate(ctx *core.Context, g *ast.Grammar) ([]byte, error) {
	contract.Require(ctx != nil, "ctx")
	contract.Require(g != nil, "g")

	if glog.V(3) {
		glog.V(3).Infof("Generating Go parser for grammar %v (rules=%v, tokens=%v)",
			g.Name, len(g.Rules), ctx.Opts.TokenMode)
	}

	checkNames(ctx, g)
	if ctx.Errors() > 0 {
		return nil, ctx.Err()
	}

	var buffer bytes.Buffer
	data := preambleData{
		Tool:    "pegc " + version.Version,
		Package: ctx.Opts.Package,
		Type:    ctx.Opts.ParserType(g.Name),
	}
	if err := preamble.Execute(&buffer, data); err != nil {
		return nil, errors.Wrap(err, "rendering parser preamble")
	}
	if err := preamble.ExecuteTemplate(&buffer, mode(ctx.Opts.TokenMode), data); err != nil {
		return nil, errors.Wrap(err, "rendering base primitives")
	}

	for _, rule := range g.Rules {
		ctx.Currule = rule.Name
		gen := &generator{w: &buffer}
		gen.genRule(data.Type, rule)
	}
	ctx.Currule = ""

	src := buffer.Bytes()
	if ctx.Opts.NoFormat {
		return src, nil
	}
	formatted, err := format.Source(src)
	if err != nil {
		ctx.Errorf(pegerrors.ErrorFormatFailed, err)
		return src, ctx.Err()
	}
	return formatted, nil
}

// generator writes the methods of one rule.
type generator struct {
	w      *bytes.Buffer
	indent int
	temps  int // the number of temporaries declared so far.
}

func (g *generator) linef(format string, args ...interface{}) {
	if format != "" {
		g.w.WriteString(strings.Repeat("\t", g.indent))
	}
	fmt.Fprintf(g.w, format, args...)
	g.w.WriteString("\n")
}

func (g *generator) in()  { g.indent++ }
func (g *generator) out() { g.indent-- }

// temp returns a fresh name for a temporary.
func (g *generator) temp(prefix string) string {
	g.temps++
	return prefix + strconv.Itoa(g.temps)
}

// block wraps body in a loop that runs once, so that body can stop at any point by breaking.
func (g *generator) block(label string, body func()) {
	g.linef("for { // %v", label)
	g.in()
	body()
	g.linef("break")
	g.out()
	g.linef("}")
}

func (g *generator) failIfNot() {
	g.linef("if !%v.OK() {", result)
	g.in()
	g.linef("break")
	g.out()
	g.linef("}")
}

func (g *generator) genRule(typ string, rule *ast.Rule) {
	if glog.V(7) {
		glog.V(7).Infof("Generating rule %v", rule.Name)
	}

	params := ""
	if len(rule.Parameters) > 0 {
		params = strings.Join(rule.Parameters, ", ") + " interface{}"
	}

	g.linef("")
	g.linef("// %v", strings.Replace(ast.RuleString(rule), "\n", " ", -1))
	g.linef("func (%v *%v) %v(%v) rt.Result {", receiver, typ, rule.Name, params)
	g.in()
	g.linef("%v := rt.Failed", result)
	if bound := boundNames(rule); len(bound) > 0 {
		names := strings.Join(bound, ", ")
		blanks := strings.TrimSuffix(strings.Repeat("_, ", len(bound)), ", ")
		g.linef("var %v interface{}", names)
		g.linef("%v = %v", blanks, names)
	}
	g.linef("")
	g.genPattern(rule.Pattern)
	g.linef("")
	g.linef("return %v", result)
	g.out()
	g.linef("}")
}

func (g *generator) genPattern(node ast.Pattern) {
	switch n := node.(type) {
	case *ast.Sequence:
		g.genSequence(n)
	case *ast.Choice:
		g.genChoice(n)
	case *ast.Bind:
		g.genPattern(n.Pattern)
		g.linef("%v = %v.Value()", n.Name, result)
	case *ast.Negate:
		g.genNegate(n)
	case *ast.Lookahead:
		g.genLookahead(n)
	case *ast.Repeat:
		g.genRepeat("repeat", n.Pattern, false)
	case *ast.Repeat1:
		g.genRepeat("repeat1", n.Pattern, true)
	case *ast.Delimited:
		g.genDelimited("delimited", n.Element, n.Delimiter, false)
	case *ast.Delimited1:
		g.genDelimited("delimited1", n.Element, n.Delimiter, true)
	case *ast.Optional:
		g.genOptional(n)
	case *ast.Immediate:
		g.linef("%v = rt.Invoke(%v)", result, n.Code)
	case *ast.Action:
		g.linef("%v = rt.Matched(%v)", result, n.Code)
	case *ast.Predicate:
		g.linef("if rt.Truthy(%v) {", n.Code)
		g.linef("\t%v = rt.Matched(nil)", result)
		g.linef("} else {")
		g.linef("\t%v = rt.Failed", result)
		g.linef("}")
	case *ast.Call:
		g.linef("%v = %v.%v(%v)", result, receiver, n.Name, n.Code)
	case *ast.PCall:
		g.genPCall(n)
	case *ast.TokenTag:
		g.linef("%v = %v.Tag(%v)", result, receiver, strconv.Quote(n.Name))
	case *ast.TokenText:
		g.linef("%v = %v.Text(%v)", result, receiver, strconv.Quote(n.Text))
	default:
		contract.Failf("Unrecognized pattern kind during code generation: %v", reflect.TypeOf(node))
	}
}

// genSequence runs members until one fails.  The cursor is left where the failure happened; restoring it is up to the
// nearest enclosing construct that backtracks.
func (g *generator) genSequence(n *ast.Sequence) {
	g.block("sequence", func() {
		for _, member := range n.Patterns {
			g.genPattern(member)
			g.failIfNot()
		}
	})
}

// genChoice commits to the first alternative that matches.
func (g *generator) genChoice(n *ast.Choice) {
	g.block("choice", func() {
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		for _, alt := range n.Patterns {
			g.linef("%v.SetPosition(%v)", receiver, pos)
			g.genPattern(alt)
			g.linef("if %v.OK() {", result)
			g.linef("\tbreak")
			g.linef("}")
		}
	})
}

func (g *generator) genNegate(n *ast.Negate) {
	g.block("negate", func() {
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		g.genPattern(n.Pattern)
		g.linef("if %v.OK() {", result)
		g.linef("\t%v = rt.Failed", result)
		g.linef("} else {")
		g.linef("\t%v = rt.Matched(nil)", result)
		g.linef("}")
		g.linef("%v.SetPosition(%v)", receiver, pos)
	})
}

func (g *generator) genLookahead(n *ast.Lookahead) {
	g.block("lookahead", func() {
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		g.genPattern(n.Pattern)
		g.linef("%v.SetPosition(%v)", receiver, pos)
	})
}

func (g *generator) genOptional(n *ast.Optional) {
	g.block("optional", func() {
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		g.genPattern(n.Pattern)
		g.linef("if !%v.OK() {", result)
		g.linef("\t%v.SetPosition(%v)", receiver, pos)
		g.linef("\t%v = rt.Matched(nil)", result)
		g.linef("}")
	})
}

// genRepeat collects matches until the pattern fails.  A match that consumes nothing is collected once and ends the
// loop, since matching it again would never stop.
func (g *generator) genRepeat(label string, pattern ast.Pattern, nonempty bool) {
	g.block(label, func() {
		list := g.temp(array)
		g.linef("%v := rt.List{}", list)
		g.linef("for {")
		g.in()
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		g.genPattern(pattern)
		g.restoreAndBreakIfNot(pos)
		g.collect(list, pos)
		g.out()
		g.linef("}")
		g.finishList(list, nonempty)
	})
}

// genDelimited collects elements separated by delimiters.  If the element after a delimiter fails, the cursor goes back
// to before that delimiter.
func (g *generator) genDelimited(label string, elem, delim ast.Pattern, nonempty bool) {
	g.block(label, func() {
		list := g.temp(array)
		g.linef("%v := rt.List{}", list)
		g.linef("for {")
		g.in()
		pos := g.temp(initpos)
		g.linef("%v := %v.Position()", pos, receiver)
		g.linef("if len(%v) > 0 {", list)
		g.in()
		g.genPattern(delim)
		g.restoreAndBreakIfNot(pos)
		g.out()
		g.linef("}")
		g.genPattern(elem)
		g.restoreAndBreakIfNot(pos)
		g.collect(list, pos)
		g.out()
		g.linef("}")
		g.finishList(list, nonempty)
	})
}

func (g *generator) restoreAndBreakIfNot(pos string) {
	g.linef("if !%v.OK() {", result)
	g.linef("\t%v.SetPosition(%v)", receiver, pos)
	g.linef("\tbreak")
	g.linef("}")
}

func (g *generator) collect(list, pos string) {
	g.linef("%v = %v.Append(%v)", list, list, result)
	g.linef("if %v.Position() == %v {", receiver, pos)
	g.linef("\tbreak")
	g.linef("}")
}

func (g *generator) finishList(list string, nonempty bool) {
	if nonempty {
		g.linef("if len(%v) == 0 {", list)
		g.linef("\t%v = rt.Failed", result)
		g.linef("} else {")
		g.linef("\t%v = rt.Matched(%v)", result, list)
		g.linef("}")
	} else {
		g.linef("%v = rt.Matched(%v)", result, list)
	}
}

// genPCall passes each argument pattern as a thunk.  A thunk has a result register of its own, but binds inside of it
// still assign the calling rule's variables.
func (g *generator) genPCall(n *ast.PCall) {
	g.linef("%v = %v.%v(", result, receiver, n.Name)
	g.in()
	for _, arg := range n.Patterns {
		g.linef("rt.Thunk(func() rt.Result {")
		g.in()
		g.linef("%v := rt.Failed", result)
		g.genPattern(arg)
		g.linef("return %v", result)
		g.out()
		g.linef("}),")
	}
	g.out()
	g.linef(")")
}
