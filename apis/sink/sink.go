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

package sink

import (
	"context"

	"dirpx.dev/logflow/apis/record"
)

// Batch is the unit of delivery to a sink: every record the formatter
// worker drained from ingress in one pass, shared by reference across
// every sink's queue. No sink may mutate it.
type Batch []record.Record

// Sink is the pluggable, batch-oriented destination contract (C8).
// A sink is driven by exactly one dedicated worker goroutine, so
// implementations do not need to be safe for concurrent calls to
// DoLogs/Flush from multiple goroutines — only Name needs to tolerate
// being called from outside that worker (diagnostics, metrics).
type Sink interface {
	// Name returns a human-friendly identifier of the sink, used for
	// diagnostics, metrics, and config lookups.
	Name() string

	// DoLogs delivers a whole batch to the destination. Errors are
	// never propagated back through the pipeline: the sink worker logs
	// them to the internal diagnostic logger and continues with the
	// next batch.
	DoLogs(ctx context.Context, batch Batch) error

	// Flush ensures that everything DoLogs has accepted so far is
	// actually durable (fsynced, sent, whatever "durable" means for
	// this destination). Sinks that do not buffer may return nil.
	Flush(ctx context.Context) error
}
