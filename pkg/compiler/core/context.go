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

// Package core contains the state shared by every pass of the grammar compiler.
package core

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/hashicorp/go-multierror"

	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/util/contract"
)

// Phase represents a compiler phase.
type Phase interface {
	// Diag fetches the diagnostics sink used by this compiler pass.
	Diag() diag.Sink
}

// Context is a bag of state common throughout all compiler passes.
type Context struct {
	Diag    diag.Sink       // the diagnostics sink to use.
	Doc     *diag.Document  // the grammar document being compiled, if it came from a file.
	Opts    *Options        // the options used for this compilation.
	Currule string          // the name of the rule currently being compiled.
	Base    context.Context // the request context, which carries the parent tracing span; may be nil.

	errs *multierror.Error
}

// NewContext creates a new context with the given state.  A nil sink discards all output and a nil options value uses
// the defaults; errors are still recorded and available through Err.
func NewContext(d diag.Sink, doc *diag.Document, opts *Options) *Context {
	if d == nil {
		d = diag.DefaultSink(ioutil.Discard, ioutil.Discard, diag.FormatOptions{})
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Context{
		Diag: d,
		Doc:  doc,
		Opts: opts,
	}
}

// Errorf issues an error attributed to the current document and rule, and records it so that the pass can be failed.
func (ctx *Context) Errorf(d *diag.Diag, args ...interface{}) {
	d = ctx.locate(d)
	ctx.Diag.Errorf(d, args...)
	ctx.errs = multierror.Append(ctx.errs, &Error{Diag: d, Args: args})
}

// Warningf issues a warning attributed to the current document and rule.
func (ctx *Context) Warningf(d *diag.Diag, args ...interface{}) {
	ctx.Diag.Warningf(ctx.locate(d), args...)
}

func (ctx *Context) locate(d *diag.Diag) *diag.Diag {
	if ctx.Doc != nil {
		d = d.WithDocument(ctx.Doc)
	}
	if ctx.Currule != "" && d.Rule == "" {
		d = d.WithRule(ctx.Currule)
	}
	return d
}

// Request returns the request context passes should parent their tracing spans on.
func (ctx *Context) Request() context.Context {
	if ctx.Base == nil {
		return context.Background()
	}
	return ctx.Base
}

// Recover runs a pass, turning a contract violation raised inside of it into an invariant violated error for the rule
// being compiled.  Any other panic is propagated.
func (ctx *Context) Recover(pass func()) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := contract.AsViolation(r)
			if !ok {
				panic(r)
			}
			ctx.Errorf(errors.ErrorInvariantViolated, v.Message)
		}
	}()
	pass()
}

// Errors returns the number of errors recorded through this context.
func (ctx *Context) Errors() int {
	if ctx.errs == nil {
		return 0
	}
	return len(ctx.errs.Errors)
}

// Err returns every error recorded so far as a single aggregate, or nil if there were none.
func (ctx *Context) Err() error {
	return ctx.errs.ErrorOrNil()
}

// Error is a diagnostic issued while compiling a grammar, in the form of a Go error.
type Error struct {
	Diag *diag.Diag
	Args []interface{}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf(e.Diag.Message, e.Args...)
	if e.Diag.Rule != "" {
		msg = e.Diag.Rule + ": " + msg
	}
	if e.Diag.ID > 0 {
		msg = fmt.Sprintf("%v%v: %v", diag.DefaultSinkIDPrefix, e.Diag.ID, msg)
	}
	return msg
}

// AsError extracts the first compilation error with the given diagnostic ID from err, if any.
func AsError(err error, id diag.ID) (*Error, bool) {
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			if ce, ok := AsError(e, id); ok {
				return ce, true
			}
		}
		return nil, false
	}
	if ce, ok := err.(*Error); ok && ce.Diag.ID == id {
		return ce, true
	}
	return nil, false
}
