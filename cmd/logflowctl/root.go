/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
var globalFlags struct {
	configPath string
	logJSON    bool
	dir        string
}

// cmdOut is where health/version write their human-facing output.
// Tests swap it for a buffer instead of asserting against os.Stdout.
var cmdOut io.Writer = os.Stdout

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "logflowctl",
		Short: "Drive a logflow pipeline from the command line",
		Long: `logflowctl wires a logflow pipeline from a YAML config document (or a
built-in single-sink default), then drives it: emit synthetic load,
flush, check worker health.

It exists to exercise the engine end to end outside of a test binary;
it is not part of the pipeline itself.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&globalFlags.configPath, "config", "c", "",
		"path to a logflow YAML config document (see runtime/config.Document); omitted uses a single stdout sink at info level")
	root.PersistentFlags().BoolVar(&globalFlags.logJSON, "log-json", false,
		"emit logflowctl's own diagnostic log as JSON instead of a console writer")
	root.PersistentFlags().StringVar(&globalFlags.dir, "dir", "",
		"when --config is omitted, switch the default sink to a file sink writing into this directory")

	root.AddCommand(newRunCommand())
	root.AddCommand(newHealthCommand())
	root.AddCommand(newVersionCommand())
	return root
}
