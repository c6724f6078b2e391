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
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/pulumi/pegc/pkg/compiler"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/compiler/errors"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/util/cmdutil"
	"github.com/pulumi/pegc/pkg/util/textdiff"
	"github.com/pulumi/pegc/pkg/version"
	"github.com/pulumi/pegc/pkg/workspace"
)

func newGenCmd() *cobra.Command {
	g := &genCmd{compileCmd: compileCmd{dir: "."}}
	cmd := &cobra.Command{
		Use:   "gen [grammar...]",
		Short: "Generate Go parsers from grammar files",
		Long: "Generate Go parsers from grammar files.\n" +
			"\n" +
			"Each grammar is compiled independently, several at a time, and written next to the\n" +
			"grammar (or into --out) as a .go file with the grammar's base name.  With no arguments,\n" +
			"the grammars listed in the nearest pegc.yaml project file are compiled.\n" +
			"\n" +
			"With --check, nothing is written; instead, pegc prints how each generated parser\n" +
			"differs from the file on disk and fails if any of them are out of date.",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			g.sink = cmdutil.Diag()
			g.stdout = cmd.OutOrStdout()
			g.flagset = cmd.Flags()
			color, _ := cmd.Flags().GetString("color")
			g.colors = cmdutil.ColorsEnabled(color)
			return g.run(context.Background(), args)
		}),
	}

	g.flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&g.out, "out", "o", "", "Write generated parsers into this directory")
	cmd.Flags().BoolVar(&g.check, "check", false, "Report generated parsers that differ from those on disk")
	cmd.Flags().BoolVar(&g.noFormat, "no-format", false, "Do not run generated source through gofmt")
	cmd.Flags().IntVarP(&g.parallel, "parallel", "p", runtime.NumCPU(), "How many grammars to compile at once")

	return cmd
}

// genCmd holds the settings of one invocation of `pegc gen`.
type genCmd struct {
	compileCmd
	out      string
	check    bool
	noFormat bool
	parallel int

	stdout io.Writer
	colors bool
}

// genResult is the outcome of generating one parser.
type genResult struct {
	file   string // the grammar file.
	out    string // the generated parser's path.
	size   int    // the size of the generated source.
	diff   string // with --check, how the file on disk differs.
	failed bool   // true if diagnostics were issued for this grammar.
}

func (g *genCmd) run(ctx context.Context, args []string) error {
	proj, root, err := loadProject(g.dir, g.sink)
	if err != nil {
		return err
	}

	wd, err := filepath.Abs(g.dir)
	if err != nil {
		return err
	}
	files := absPaths(wd, args)
	if len(files) == 0 {
		files = proj.Files(root)
	}
	if len(files) == 0 {
		g.sink.Errorf(errors.ErrorNothingToCompile)
		return cmdutil.ErrAlreadyReported
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "pegc.gen")
	defer span.Finish()
	span.SetTag("grammars", len(files))

	parallel := g.parallel
	if parallel < 1 {
		parallel = 1
	}
	sem := semaphore.NewWeighted(int64(parallel))
	group, gctx := errgroup.WithContext(ctx)
	results := make([]*genResult, len(files))
	for i, file := range files {
		i, file := i, file
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			res, err := g.genFile(gctx, proj, root, file)
			results[i] = res
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return g.report(results)
}

func (g *genCmd) genFile(ctx context.Context, proj *workspace.Project, root string, file string) (*genResult, error) {
	res := &genResult{file: file, out: proj.OutputPath(root, file)}
	if g.out != "" {
		out := g.out
		if !filepath.IsAbs(out) {
			out = filepath.Join(g.dir, out)
		}
		res.out = filepath.Join(out, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))+".go")
	}

	grammar, doc, err := readGrammar(file, g.sink)
	if err != nil {
		res.failed = true
		return res, nil
	}

	opts := proj.Options(root, file)
	if g.flagset != nil {
		g.flags.apply(g.flagset, opts)
	}
	opts.NoFormat = g.noFormat

	cctx := core.NewContext(g.sink, doc, opts)
	cctx.Base = ctx
	src, err := compiler.Generate(cctx, grammar)
	if err != nil {
		if glog.V(3) {
			glog.V(3).Infof("Generating %v failed: %v", file, err)
		}
		res.failed = true
		return res, nil
	}
	res.size = len(src)

	if g.check {
		old, err := ioutil.ReadFile(res.out)
		if err != nil && !os.IsNotExist(err) {
			g.sink.Errorf(errors.ErrorIO.WithDocument(doc), err)
			res.failed = true
			return res, nil
		}
		g.checkGenerator(doc, res.out, old)
		if diffs := textdiff.Lines(string(old), string(src)); textdiff.Changed(diffs) {
			res.diff = textdiff.Format(diffs, g.colors)
			g.sink.Errorf(errors.ErrorGeneratedOutputMismatch.WithDocument(doc), displayPath(res.out), doc.File)
			res.failed = true
		}
		return res, nil
	}

	if err = os.MkdirAll(filepath.Dir(res.out), 0755); err == nil {
		err = ioutil.WriteFile(res.out, src, 0644)
	}
	if err != nil {
		g.sink.Errorf(errors.ErrorIO.WithDocument(doc), err)
		res.failed = true
	}
	return res, nil
}

const (
	headerPrefix = "// Code generated by pegc "
	headerSuffix = ". DO NOT EDIT."
)

// generatorVersion extracts the toolchain version from the header of a previously generated parser.
func generatorVersion(src []byte) (string, bool) {
	line := string(src)
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	if !strings.HasPrefix(line, headerPrefix) || !strings.HasSuffix(line, headerSuffix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(line, headerPrefix), headerSuffix), true
}

// checkGenerator warns when the parser on disk came from a toolchain whose runtime this one does not share.
func (g *genCmd) checkGenerator(doc *diag.Document, out string, old []byte) {
	theirs, ok := generatorVersion(old)
	if !ok {
		return
	}
	compatible, err := version.Compatible(theirs)
	if err != nil {
		glog.V(5).Infof("Ignoring version stamp of %v: %v", out, err)
		return
	}
	if !compatible {
		g.sink.Warningf(errors.WarningIncompatibleGenerator.WithDocument(doc),
			displayPath(out), theirs, version.Version)
	}
}

// report prints the results in the order the grammars were given, and fails if any grammar did.
func (g *genCmd) report(results []*genResult) error {
	var generated int
	var total uint64
	var failed bool
	for _, res := range results {
		if res == nil {
			failed = true
			continue
		}
		if res.failed {
			failed = true
			if res.diff != "" {
				fmt.Fprintf(g.stdout, "%v (from %v):\n%v", displayPath(res.out), displayPath(res.file), res.diff)
			}
			continue
		}
		generated++
		total += uint64(res.size)
		if !g.check {
			fmt.Fprintf(g.stdout, "%v -> %v (%v)\n",
				displayPath(res.file), displayPath(res.out), humanize.Bytes(uint64(res.size)))
		}
	}

	verb := "Generated"
	if g.check {
		verb = "Verified"
	}
	fmt.Fprintf(g.stdout, "%v %v of %v parsers (%v)\n",
		verb, humanize.Comma(int64(generated)), humanize.Comma(int64(len(results))), humanize.Bytes(total))

	if failed {
		return cmdutil.ErrAlreadyReported
	}
	return nil
}
