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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/pegc/pkg/eval"
	"github.com/pulumi/pegc/pkg/rt"
	"github.com/pulumi/pegc/pkg/util/cmdutil"
)

func newRunCmd() *cobra.Command {
	r := &runCmd{compileCmd: compileCmd{dir: "."}}
	cmd := &cobra.Command{
		Use:   "run <grammar> <rule> <input>",
		Short: "Parse an input with a grammar, without generating code",
		Long: "Parse an input with a grammar, without generating code.\n" +
			"\n" +
			"The grammar is compiled and then interpreted, starting at the given rule.  Because no\n" +
			"Go code is generated, every action, predicate, and immediate in the grammar must be a\n" +
			"plain reference to a bound variable or a rule parameter.\n" +
			"\n" +
			"In token mode, the input is split on whitespace and each word becomes a token whose\n" +
			"tag and text are both the word itself.",
		Args: cobra.ExactArgs(3),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			r.sink = cmdutil.Diag()
			r.flagset = cmd.Flags()
			return r.run(context.Background(), args[0], args[1], args[2], cmd.OutOrStdout())
		}),
	}

	r.flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&r.partial, "partial", false, "Succeed even if the rule does not consume the whole input")

	return cmd
}

type runCmd struct {
	compileCmd
	partial bool
}

func (r *runCmd) run(ctx context.Context, file string, rule string, input string, stdout io.Writer) error {
	g, opts, err := r.compile(ctx, file, false)
	if err != nil {
		return err
	}
	interp, err := eval.New(g, nil)
	if err != nil {
		return errors.Wrapf(err, "grammar %v cannot be interpreted", g.Name)
	}

	var in rt.Input
	var size int
	var unit string
	if opts.TokenMode {
		var tokens []rt.Token
		for _, word := range strings.Fields(input) {
			tokens = append(tokens, rt.Token{Tag: word, Text: word})
		}
		in, size, unit = rt.NewTokenStream(tokens), len(tokens), "tokens"
	} else {
		in, size, unit = rt.NewScanner(input), len(input), "characters"
	}

	result, err := interp.Evaluate(in, rule)
	if err != nil {
		return err
	}
	if !result.OK() {
		return errors.Errorf("rule %v did not match", rule)
	}

	fmt.Fprintf(stdout, "matched %v of %v %v: %v\n", in.Position(), size, unit, result)
	if !r.partial && in.Position() != size {
		return errors.Errorf("rule %v stopped at position %v; use --partial to accept a prefix", rule, in.Position())
	}
	return nil
}
