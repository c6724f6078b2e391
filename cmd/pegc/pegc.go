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
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/pulumi/pegc/pkg/diag"
	"github.com/pulumi/pegc/pkg/util/cmdutil"
	"github.com/pulumi/pegc/pkg/util/logging"
)

// NewPegcCmd creates a new pegc Cmd instance.
func NewPegcCmd() *cobra.Command {
	var color string
	var logToStderr bool
	var tracing string
	var verbose int
	cmd := &cobra.Command{
		Use:   "pegc",
		Short: "pegc compiles PEG grammars into Go parsers",
		Long: "pegc compiles PEG grammars into Go parsers.\n" +
			"\n" +
			"A grammar is a YAML or JSON file listing named rules.  pegc rewrites left recursive\n" +
			"rules into loops, factors out shared prefixes, and emits a recursive descent parser\n" +
			"built on the github.com/pulumi/pegc/pkg/rt runtime.\n" +
			"\n" +
			"Defaults for the grammars in a directory tree may be kept in a pegc.yaml project file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogging(logToStderr, verbose)
			if err := cmdutil.ValidateColor(color); err != nil {
				return err
			}
			cmdutil.InitDiag(diag.FormatOptions{Colors: cmdutil.ColorsEnabled(color)})
			return cmdutil.InitTracing("pegc", tracing)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cmdutil.CloseTracing()
			glog.Flush()
		},
	}

	cmd.PersistentFlags().StringVar(&color, "color", cmdutil.ColorAuto,
		"Colorize output; one of auto, always, or never")
	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().StringVar(&tracing, "tracing", "",
		"Emit tracing to a Zipkin-compatible tracing endpoint")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newGenCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
