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

// Package pipeline resolves a declarative apis/pipeline.Specification
// into a concrete apis/pipeline.Config, consulting the runtime filter
// and sink registries, and assembles the resulting runtime/engine.Engine.
//
// A Specification only names filters and sinks; it does not carry
// sink configuration (directory, rolling policy, queue capacity).
// That configuration is the top-level logflow config document's
// concern, supplied to Builder as SinkDefs, keyed by the same names
// Specification.Sinks references.
package pipeline

import (
	"context"
	"fmt"

	"dirpx.dev/logflow/apis/filter"
	"dirpx.dev/logflow/apis/level"
	apipipeline "dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/runtime/engine"
	"dirpx.dev/logflow/runtime/plugin"
	runtimesink "dirpx.dev/logflow/runtime/sink"
)

// SinkDef is one named sink's resolved configuration: which registry
// kind to build, its options (decoded into that kind's concrete
// Options type), and its worker queue capacity.
type SinkDef struct {
	Kind          string
	Options       any
	QueueCapacity int
}

// Builder turns Specifications into running engines. Level, ChanLen
// and Formatter are the parts of Config a Specification never
// carries; SinkDefs supplies the out-of-band sink configuration
// described above.
type Builder struct {
	Level     level.Level
	ChanLen   int
	Formatter apipipeline.Formatter
	SinkDefs  map[string]SinkDef
}

// Build resolves spec against the runtime registries and the
// Builder's SinkDefs, then starts an engine.Engine.
func (b Builder) Build(ctx context.Context, spec apipipeline.Specification) (apipipeline.Pipeline, error) {
	cfg, err := b.resolve(ctx, spec)
	if err != nil {
		return nil, err
	}
	return engine.New(*cfg)
}

// ResolveConfig exposes the Specification-to-Config resolution
// without starting an engine, for callers that want to inspect or
// test a Config before running it.
func (b Builder) ResolveConfig(ctx context.Context, spec apipipeline.Specification) (*apipipeline.Config, error) {
	return b.resolve(ctx, spec)
}

func (b Builder) resolve(ctx context.Context, spec apipipeline.Specification) (*apipipeline.Config, error) {
	chain := make(filter.Chain, 0, len(spec.Pre))
	for _, ps := range spec.Pre {
		if ps.Enabled != nil && !*ps.Enabled {
			continue
		}
		st, err := plugin.Build(ctx, ps.Kind, ps.Name, ps.Config)
		if err != nil {
			return nil, fmt.Errorf("pipeline: resolving filter %q: %w", ps.Kind, err)
		}
		chain = append(chain, plugin.AsFilter(st))
	}

	appends := make([]apipipeline.SinkConfig, 0, len(spec.Sinks))
	for _, name := range spec.Sinks {
		def, ok := b.SinkDefs[name]
		if !ok {
			return nil, fmt.Errorf("pipeline: sink %q has no SinkDef", name)
		}
		s, err := runtimesink.Build(ctx, def.Kind, name, def.Options)
		if err != nil {
			return nil, fmt.Errorf("pipeline: building sink %q: %w", name, err)
		}
		appends = append(appends, apipipeline.SinkConfig{Sink: s, QueueCapacity: def.QueueCapacity})
	}

	return &apipipeline.Config{
		Level:     b.Level,
		ChanLen:   b.ChanLen,
		Formatter: b.Formatter,
		Filters:   chain,
		Appends:   appends,
	}, nil
}

var _ apipipeline.Builder = Builder{}
