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
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pulumi/pegc/pkg/compiler"
	"github.com/pulumi/pegc/pkg/compiler/ast"
	"github.com/pulumi/pegc/pkg/compiler/core"
	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/encoding"
	"github.com/pulumi/pegc/pkg/util/cmdutil"
)

func newDumpCmd() *cobra.Command {
	d := &dumpCmd{compileCmd: compileCmd{dir: "."}}
	cmd := &cobra.Command{
		Use:   "dump <grammar>",
		Short: "Print a grammar after it has been compiled",
		Long: "Print a grammar after it has been compiled.\n" +
			"\n" +
			"The grammar is printed in the same form grammar files are written in, after left\n" +
			"recursion has been eliminated and choices have been factored, along with the set of\n" +
			"variables each rule and pattern binds.  With --raw, the grammar is printed as decoded.",
		Args: cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			d.sink = cmdutil.Diag()
			d.flagset = cmd.Flags()
			return d.run(context.Background(), args[0], cmd.OutOrStdout())
		}),
	}

	d.flags.register(cmd.Flags())
	cmd.Flags().StringVar(&d.format, "format", "yaml", "The output format; either yaml or json")
	cmd.Flags().BoolVar(&d.raw, "raw", false, "Print the grammar without compiling it")

	return cmd
}

// compileCmd loads and compiles a single grammar with its project's settings.
type compileCmd struct {
	flags   compileFlags
	flagset *pflag.FlagSet
	dir     string // the directory in which to look for a project file.
	sink    diag.Sink
}

func (c *compileCmd) options(file string) (string, *core.Options, error) {
	proj, root, err := loadProject(c.dir, c.sink)
	if err != nil {
		return "", nil, err
	}
	wd, err := filepath.Abs(c.dir)
	if err != nil {
		return "", nil, err
	}
	file = absPaths(wd, []string{file})[0]

	opts := proj.Options(root, file)
	if c.flagset != nil {
		c.flags.apply(c.flagset, opts)
	}
	return file, opts, nil
}

func (c *compileCmd) compile(ctx context.Context, file string, raw bool) (*ast.Grammar, *core.Options, error) {
	file, opts, err := c.options(file)
	if err != nil {
		return nil, nil, err
	}
	g, doc, err := readGrammar(file, c.sink)
	if err != nil {
		return nil, nil, err
	}
	if raw {
		return g, opts, nil
	}

	cctx := core.NewContext(c.sink, doc, opts)
	cctx.Base = ctx
	if g, err = compiler.Compile(cctx, g); err != nil {
		return nil, nil, cmdutil.ErrAlreadyReported
	}
	return g, opts, nil
}

type dumpCmd struct {
	compileCmd
	format string
	raw    bool
}

func (d *dumpCmd) run(ctx context.Context, file string, stdout io.Writer) error {
	var m encoding.Marshaler
	switch d.format {
	case "yaml":
		m = encoding.YAML
	case "json":
		m = encoding.JSON
	default:
		return errors.Errorf("unsupported format '%v': expected yaml or json", d.format)
	}

	g, _, err := d.compile(ctx, file, d.raw)
	if err != nil {
		return err
	}
	b, err := encoding.EncodeGrammar(m, g)
	if err != nil {
		return errors.Wrap(err, "could not encode grammar")
	}
	if _, err = stdout.Write(b); err != nil {
		return err
	}
	if m.IsJSONLike() {
		_, err = io.WriteString(stdout, "\n")
	}
	return err
}
