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

// Package compiler runs the passes that turn a grammar into a parser: validation, left recursion elimination, left
// factoring, simplification, binding analysis and finally code generation.  Each pass consumes the grammar the one
// before it produced, and compilation stops after the first pass that reports an error.
package compiler

import (
	"github.com/golang/glog"
	opentracing "github.com/opentracing/opentracing-go"

	gen "github.com/pulumi/pegc/pkg/codegen/go"
	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/binder"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/factor"
	"github.com/pulumi/pegc/pkg/compiler/leftrec"
	"github.com/pulumi/pegc/pkg/compiler/simplify"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Compiler provides an interface into the many phases of the pegc compilation process.
type Compiler interface {
	core.Phase

	// Context returns the current compiler context.
	Context() *core.Context

	// Compile validates a grammar and runs every transformation over it.  The result is ready for code generation,
	// and every one of its nodes carries the names it binds.  The input grammar is not modified.
	Compile(g *ast.Grammar) (*ast.Grammar, error)
	// Generate compiles a grammar and emits the Go source of its parser.
	Generate(g *ast.Grammar) ([]byte, error)
}

// compiler is the canonical implementation of the pegc compiler.
type compiler struct {
	ctx *core.Context
}

// NewCompiler creates a new instance of the pegc compiler, reporting through the given context.
func NewCompiler(ctx *core.Context) Compiler {
	contract.Require(ctx != nil, "ctx")
	return &compiler{ctx: ctx}
}

func (c *compiler) Context() *core.Context {
	return c.ctx
}

func (c *compiler) Diag() diag.Sink {
	return c.ctx.Diag
}

// pass is one step of the pipeline.
type pass struct {
	name string
	skip bool
	run  func(g *ast.Grammar) *ast.Grammar
}

func (c *compiler) passes() []pass {
	opts := c.ctx.Opts
	return []pass{
		{name: "validate", run: func(g *ast.Grammar) *ast.Grammar {
			binder.Validate(c.ctx, g)
			return g
		}},
		{name: "leftrec", run: func(g *ast.Grammar) *ast.Grammar { return leftrec.Eliminate(c.ctx, g) }},
		{name: "factor", skip: opts.SkipFactor, run: factor.Factor},
		{name: "simplify", skip: opts.SkipSimplify, run: simplify.Simplify},
		{name: "bindings", run: binder.AnalyzeBindings},
	}
}

func (c *compiler) Compile(g *ast.Grammar) (*ast.Grammar, error) {
	contract.Require(g != nil, "g")

	glog.Infof("Compiling grammar %v (rules=%v)", g.Name, len(g.Rules))
	if glog.V(2) {
		defer func() {
			glog.V(2).Infof("Compiling grammar %v completed w/ %v warnings and %v errors",
				g.Name, c.Diag().Warnings(), c.Diag().Errors())
		}()
	}

	// Passes consume their input, so work on a copy that the caller does not share.
	result := ast.CloneGrammar(g)
	for _, p := range c.passes() {
		if p.skip {
			if glog.V(5) {
				glog.V(5).Infof("Skipping pass %v", p.name)
			}
			continue
		}

		var ok bool
		result, ok = c.runPass(p, result)
		if !ok {
			return nil, c.ctx.Err()
		}
	}
	return result, nil
}

// runPass runs one pass under its own tracing span.  It returns false if the pass reported any errors.
func (c *compiler) runPass(p pass, g *ast.Grammar) (*ast.Grammar, bool) {
	span, _ := opentracing.StartSpanFromContext(c.ctx.Request(), "pegc."+p.name)
	span.SetTag("grammar", g.Name)
	defer span.Finish()

	before := c.ctx.Errors()
	var result *ast.Grammar
	c.ctx.Recover(func() {
		result = p.run(g)
	})
	c.ctx.Currule = ""

	if errs := c.ctx.Errors() - before; errs > 0 {
		span.SetTag("error", true)
		if glog.V(3) {
			glog.V(3).Infof("Pass %v reported %v errors", p.name, errs)
		}
		return nil, false
	}
	if glog.V(9) {
		for _, rule := range result.Rules {
			glog.V(9).Infof("After %v: %v", p.name, ast.RuleString(rule))
		}
	}
	return result, true
}

func (c *compiler) Generate(g *ast.Grammar) ([]byte, error) {
	compiled, err := c.Compile(g)
	if err != nil {
		return nil, err
	}

	span, _ := opentracing.StartSpanFromContext(c.ctx.Request(), "pegc.codegen")
	span.SetTag("grammar", g.Name)
	defer span.Finish()

	before := c.ctx.Errors()
	var src []byte
	c.ctx.Recover(func() {
		src, err = gen.Generate(c.ctx, compiled)
	})
	c.ctx.Currule = ""
	if err == nil && c.ctx.Errors() > before {
		// A contract violation during generation leaves nothing usable behind.
		return nil, c.ctx.Err()
	}
	return src, err
}

// Compile is a shorthand for NewCompiler(ctx).Compile(g).
func Compile(ctx *core.Context, g *ast.Grammar) (*ast.Grammar, error) {
	return NewCompiler(ctx).Compile(g)
}

// Generate is a shorthand for NewCompiler(ctx).Generate(g).
func Generate(ctx *core.Context, g *ast.Grammar) ([]byte, error) {
	return NewCompiler(ctx).Generate(g)
}
