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
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/encoding"
	"github.com/pulumi/pegc/pkg/util/cmdutil"
	"github.com/pulumi/pegc/pkg/workspace"
)

// readGrammar loads and decodes a grammar file.  Problems are issued to the sink, in which case the error returned is
// cmdutil.ErrAlreadyReported.
func readGrammar(path string, sink diag.Sink) (*ast.Grammar, *diag.Document, error) {
	doc, err := diag.ReadDocument(path)
	if err != nil {
		doc = diag.NewDocument(path)
		sink.Errorf(errors.ErrorCouldNotReadGrammar.WithDocument(doc), err)
		return nil, doc, cmdutil.ErrAlreadyReported
	}
	defer doc.Forget()

	m, ext := encoding.Detect(path)
	if m == nil {
		sink.Warningf(errors.WarningIllegalMarkupFileExt.WithDocument(doc), ext)
		m = encoding.Default()
	}

	g, err := encoding.DecodeGrammar(m, doc.Body)
	if err != nil {
		sink.Errorf(errors.ErrorIllegalGrammarSyntax.WithDocument(doc), err)
		return nil, doc, cmdutil.ErrAlreadyReported
	}
	if glog.V(5) {
		glog.V(5).Infof("Read grammar %v from %v (rules=%v)", g.Name, path, len(g.Rules))
	}
	return g, doc, nil
}

// loadProject finds the project file governing a directory.  With no project file, an empty project rooted at the
// directory itself is returned, so that every grammar gets the compiler's defaults.
func loadProject(dir string, sink diag.Sink) (*workspace.Project, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	path, err := workspace.DetectProject(abs, sink)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return &workspace.Project{}, abs, nil
	}

	proj, err := workspace.LoadProject(path)
	if err != nil {
		sink.Errorf(errors.ErrorIllegalWorkspaceSyntax.WithDocument(diag.NewDocument(path)), err)
		return nil, "", cmdutil.ErrAlreadyReported
	}
	if glog.V(3) {
		glog.V(3).Infof("Using project file %v", path)
	}
	return proj, filepath.Dir(path), nil
}

// absPaths resolves paths given on the command line against dir.
func absPaths(dir string, paths []string) []string {
	result := make([]string, len(paths))
	for i, path := range paths {
		if filepath.IsAbs(path) {
			result[i] = filepath.Clean(path)
		} else {
			result[i] = filepath.Join(dir, path)
		}
	}
	return result
}

// displayPath shortens a path for output, preferring one relative to the working directory.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// compileFlags are the compiler settings every command accepts.  They override the project's settings, but only when
// given explicitly.
type compileFlags struct {
	tokens       bool
	pkg          string
	typ          string
	skipFactor   bool
	skipSimplify bool
}

func (f *compileFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.tokens, "tokens", false, "Generate a parser over a token stream rather than characters")
	flags.StringVar(&f.pkg, "package", core.DefaultPackage, "The Go package of the generated parser")
	flags.StringVar(&f.typ, "type", "", "The parser's type name; defaults to the grammar's name")
	flags.BoolVar(&f.skipFactor, "skip-factor", false, "Do not left factor choices")
	flags.BoolVar(&f.skipSimplify, "skip-simplify", false, "Do not flatten nested choices and sequences")
}

func (f *compileFlags) apply(flags *pflag.FlagSet, opts *core.Options) {
	if flags.Changed("tokens") {
		opts.TokenMode = f.tokens
	}
	if flags.Changed("package") {
		opts.Package = f.pkg
	}
	if flags.Changed("type") {
		opts.TypeName = f.typ
	}
	if flags.Changed("skip-factor") {
		opts.SkipFactor = f.skipFactor
	}
	if flags.Changed("skip-simplify") {
		opts.SkipSimplify = f.skipSimplify
	}
}
