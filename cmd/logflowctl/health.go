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
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/logflow/apis/health"
)

var healthFlags struct {
	jsonOut bool
}

func newHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Start a pipeline and report each worker's lifecycle state",
		Long: `health builds a pipeline the same way run does, immediately queries
every formatter/sink worker's lifecycle state (Running/Draining/
Stopped), prints the result, and exits the pipeline cleanly.`,
		RunE: runHealth,
	}
	cmd.Flags().BoolVar(&healthFlags.jsonOut, "json", false, "print the health report as JSON")
	return cmd
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	eng, _, err := buildEngine(ctx, "logflowctl.health", "plain")
	if err != nil {
		return err
	}
	defer eng.Exit()

	report := eng.Health(ctx)
	if healthFlags.jsonOut {
		return printHealthJSON(report)
	}
	printHealthTable(report)
	return nil
}

func printHealthJSON(report health.Report) error {
	enc := json.NewEncoder(cmdOut)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printHealthTable(report health.Report) {
	fmt.Fprintf(cmdOut, "overall: %s\n", report.Status)
	for _, r := range report.Results {
		line := fmt.Sprintf("  %-24s %s", r.Name, r.Status)
		if r.Error != nil {
			line += fmt.Sprintf(" (%v)", r.Error)
		}
		fmt.Fprintln(cmdOut, line)
	}
}
