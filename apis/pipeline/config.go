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

package pipeline

import (
	"dirpx.dev/logflow/apis/filter"
	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
)

// SinkConfig pairs a concrete Sink with the queue capacity the engine
// allocates for its worker.
type SinkConfig struct {
	Sink          sink.Sink
	QueueCapacity int
}

// Config is the fully resolved, immutable configuration an engine is
// built from: no Kind strings, no registries left to consult — those
// are resolved once by a Builder (see runtime/pipeline) from a
// Specification plus a sink/plugin registry.
type Config struct {
	// Level is the minimum severity the filter chain's built-in level
	// gate allows through. Use level.Trace to disable level gating.
	Level level.Level

	// ChanLen is the ingress channel capacity. ChanLen <= 0 means
	// unbounded (an unbuffered Go channel is not used for this; an
	// unbounded channel is simulated with a very large buffer by the
	// engine — see runtime/engine for the exact policy).
	ChanLen int

	// Formatter renders each Emit record exactly once, on the
	// formatter worker.
	Formatter Formatter

	// Filters run in order, on the producer's own goroutine, before a
	// record is considered for ingress at all.
	Filters filter.Chain

	// Appends lists every configured sink and its queue capacity, in
	// the fan-out order batches are published.
	Appends []SinkConfig
}

// Formatter is declared here, not imported from runtime/format, to
// keep apis/pipeline free of a dependency on the runtime layer; the
// concrete implementations in runtime/format satisfy it structurally.
type Formatter interface {
	Format(r *record.Record) (line string, ok bool)
}
