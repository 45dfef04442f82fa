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

// Package diag provides the engine's own internal diagnostic
// logger — entirely separate from the user-facing pipeline this
// module builds. When a sink's DoLogs/Flush fails, or a rotation or
// pack job errors out, the engine reports it here, not through the
// pipeline it is trying to keep running.
//
// It wraps zerolog the way application code elsewhere in this
// ecosystem does: a JSON writer for production, a console writer for
// interactive use, both timestamped and tagged with a static
// component/service identity.
package diag

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the diagnostic logger's output shape.
type Config struct {
	// JSON selects structured JSON output. The default is a
	// human-readable console writer.
	JSON bool

	// Output is the destination. Defaults to os.Stderr so diagnostic
	// noise never interleaves with a stdout sink's own output.
	Output io.Writer

	// Component names the emitting subsystem, e.g. "engine", "sink.file".
	Component string
}

// Logger is a thin handle around a zerolog.Logger, scoped to one
// engine component.
type Logger struct {
	zl zerolog.Logger
}

// New builds a diagnostic Logger from cfg.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer = out
	if !cfg.JSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: false}
	}

	zl := zerolog.New(w).With().Timestamp().Str("component", cfg.Component).Logger()
	return Logger{zl: zl}
}

// Nop returns a Logger that discards everything, used when the engine
// is built without an explicit diagnostic sink (e.g. in unit tests).
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// With returns a derived Logger tagged with an additional sink/worker
// name, so every message from that worker is attributable.
func (l Logger) With(name string) Logger {
	return Logger{zl: l.zl.With().Str("name", name).Logger()}
}

// WithFields returns a derived Logger carrying a static label set
// (deployment/service attribution — see apis/field/fields for the
// canonical keys), attached once and unchanged for the logger's
// lifetime.
func (l Logger) WithFields(labels map[string]string) Logger {
	ctx := l.zl.With()
	for k, v := range labels {
		ctx = ctx.Str(k, v)
	}
	return Logger{zl: ctx.Logger()}
}

// Debug logs a verbose diagnostic message, e.g. flush-barrier
// correlation IDs, useful when tracing a stuck flush but too noisy
// for routine operation.
func (l Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

// Info logs an informational diagnostic message.
func (l Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs a degraded-but-recovering condition (a dropped batch, a
// full sink queue).
func (l Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs a failure the engine could not avoid (a sink DoLogs
// error, a rotation failure).
func (l Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}
