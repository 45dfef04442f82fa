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

// Package apis is the root of logflow's stable, vendor-neutral
// contracts. Concrete behavior lives in runtime packages and in the
// root logflow facade.
package apis

import (
	"context"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

// Logger is the minimal engine contract the root logflow facade binds
// to exactly once at Init: Emit and Print hand records to the ingress
// channel, Flush waits for everything queued before it to reach every
// sink, and Exit shuts the workers down. It is implemented by
// runtime/engine.Engine.
type Logger interface {
	// Enabled reports whether the given level is at or above the
	// engine's configured threshold, letting callers skip expensive
	// argument construction.
	Enabled(lvl level.Level) bool

	// Emit hands a record to the ingress channel (C4). It blocks if
	// the channel is full; it returns an error if the engine has
	// already processed Exit.
	Emit(ctx context.Context, r record.Record) error

	// Print delivers pre-formatted text, bypassing the formatter.
	Print(ctx context.Context, line string) error

	// Flush blocks until every record emitted before this call has
	// reached every sink.
	Flush(ctx context.Context) error

	// Exit sends the poison pill and then blocks until the formatter
	// worker and every sink worker have drained and stopped; it does not
	// return before then.
	Exit() error
}
