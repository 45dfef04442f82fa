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
	"os"

	"golang.org/x/term"

	"dirpx.dev/logflow/apis/field/fields"
	"dirpx.dev/logflow/apis/level"
	apipipeline "dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/apis/provider"
	"dirpx.dev/logflow/runtime/config"
	"dirpx.dev/logflow/runtime/diag"
	"dirpx.dev/logflow/runtime/engine"
	"dirpx.dev/logflow/runtime/format/console"
	"dirpx.dev/logflow/runtime/format/json"
	"dirpx.dev/logflow/runtime/format/plain"
	"dirpx.dev/logflow/runtime/metrics"
	runtimepipeline "dirpx.dev/logflow/runtime/pipeline"
	runtimeprovider "dirpx.dev/logflow/runtime/provider"
	runtimesink "dirpx.dev/logflow/runtime/sink"
)

// newDiagLogger builds logflowctl's own operational logger, entirely
// separate from the pipeline's record formatter: --log-json selects
// structured output, otherwise a console writer, matching the
// convention runtime/diag documents for the engine itself.
func newDiagLogger(component string) diag.Logger {
	return diag.New(diag.Config{JSON: globalFlags.logJSON, Component: component})
}

// pickFormatter resolves the --format flag (or, when empty/"auto",
// whether stdout is a terminal) into a concrete record formatter.
// Plain text is the spec-mandated default for interactive use; a
// non-terminal stdout (piped to a log collector) gets the structured
// JSON encoder instead, the way the teacher's own CLI distinguishes
// interactive from redirected output.
func pickFormatter(kind string) apipipeline.Formatter {
	switch kind {
	case "plain":
		return plain.New()
	case "console":
		return console.New()
	case "json":
		return json.New()
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return plain.New()
		}
		return json.New()
	}
}

// loadDocument reads --config if set, otherwise returns a single
// sink at info level — logflowctl's zero-configuration default: a
// stdout sink, or a file sink in --dir when that flag is set.
func loadDocument() (*config.Document, error) {
	if globalFlags.configPath == "" {
		return defaultDocument(), nil
	}
	return config.Load(globalFlags.configPath)
}

func defaultDocument() *config.Document {
	kind := "stdout"
	opts := any(nil)
	if globalFlags.dir != "" {
		kind = "file"
		opts = map[string]any{"dir": globalFlags.dir}
	}
	return &config.Document{
		MinLevel: level.Info,
		Pipeline: apipipeline.Specification{Sinks: []string{"default"}},
		Sinks: map[string]config.SinkDef{
			"default": {Kind: kind, Options: opts, QueueCapacity: 64},
		},
	}
}

// buildEngine assembles a running engine.Engine from --config (or the
// zero-configuration default), wiring the sink registry's diagnostic
// logger and a fresh metrics set before starting any worker.
func buildEngine(ctx context.Context, component, formatKind string) (*engine.Engine, diag.Logger, error) {
	diagLogger := newDiagLogger(component)
	runtimesink.SetDiag(diagLogger)

	doc, err := loadDocument()
	if err != nil {
		return nil, diag.Logger{}, fmt.Errorf("load config: %w", err)
	}

	labels := make(map[string]string, len(doc.Labels)+2)
	for k, v := range doc.Labels {
		labels[k] = v
	}
	labels[fields.Component] = component
	labels[fields.Version] = version

	static := runtimeprovider.Static{
		Spec: &provider.Specification{
			MinLevel: &doc.MinLevel,
			Labels:   labels,
			Pipeline: &doc.Pipeline,
			Sinks:    doc.Pipeline.Sinks,
		},
		Pri:      40,
		SrcLabel: "cli",
	}
	defaultsSnap, _, err := runtimeprovider.Defaults{}.Snapshot(ctx)
	if err != nil {
		return nil, diag.Logger{}, err
	}
	staticSnap, _, err := static.Snapshot(ctx)
	if err != nil {
		return nil, diag.Logger{}, err
	}
	merged := provider.MergeAll(defaultsSnap, staticSnap)
	diagLogger = diagLogger.WithFields(merged.Labels)

	builder := runtimepipeline.Builder{
		Level:     *merged.MinLevel,
		ChanLen:   doc.ChanLen,
		Formatter: pickFormatter(formatKind),
		SinkDefs:  doc.SinkDefs(),
	}

	cfg, err := builder.ResolveConfig(ctx, *merged.Pipeline)
	if err != nil {
		return nil, diag.Logger{}, fmt.Errorf("resolve pipeline: %w", err)
	}

	eng, err := engine.New(*cfg, engine.Options{Diag: &diagLogger, Metrics: metrics.New()})
	if err != nil {
		return nil, diag.Logger{}, fmt.Errorf("start engine: %w", err)
	}
	return eng, diagLogger, nil
}
