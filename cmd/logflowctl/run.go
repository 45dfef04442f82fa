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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

var runFlags struct {
	count    int
	interval time.Duration
	level    string
	target   string
	format   string
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Wire a pipeline and emit synthetic load through it",
		Long: `run builds a pipeline from --config (or the zero-configuration
default: a single stdout sink at info level), emits --count synthetic
records, then issues a Flush and an Exit — the recommended shutdown
sequence any long-running producer should follow.`,
		RunE: runRun,
	}
	cmd.Flags().IntVar(&runFlags.count, "count", 10, "number of synthetic records to emit")
	cmd.Flags().DurationVar(&runFlags.interval, "interval", 0,
		"delay between emitted records; 0 emits as fast as the ingress channel allows")
	cmd.Flags().StringVar(&runFlags.level, "level", "info", "level to tag synthetic records with")
	cmd.Flags().StringVar(&runFlags.target, "target", "logflowctl.run", "target/logger name on synthetic records")
	cmd.Flags().StringVar(&runFlags.format, "format", "auto", "record formatter: auto, plain, console, or json")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lvl, err := level.ParseLevel(runFlags.level)
	if err != nil {
		return err
	}

	eng, diagLogger, err := buildEngine(ctx, "logflowctl.run", runFlags.format)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	diagLogger.Info(fmt.Sprintf("run %s: emitting %d records", runID, runFlags.count))

	for i := 0; i < runFlags.count; i++ {
		rec := record.NewEmit(time.Now(), lvl, runFlags.target,
			fmt.Sprintf("synthetic record %d/%d (run %s)", i+1, runFlags.count, runID),
			"cmd/logflowctl", "run.go", nil)
		if err := eng.Emit(ctx, rec); err != nil {
			return fmt.Errorf("emit record %d: %w", i, err)
		}
		if runFlags.interval > 0 {
			time.Sleep(runFlags.interval)
		}
	}

	if err := eng.Flush(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	diagLogger.Info("run " + runID + ": flushed, exiting")
	return eng.Exit()
}
