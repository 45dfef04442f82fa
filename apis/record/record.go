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

package record

import (
	"time"

	"dirpx.dev/logflow/apis/command"
	"dirpx.dev/logflow/apis/level"
)

// Record is the unit of work flowing from a producer through the
// formatter worker and into every sink. It carries both ordinary log
// payloads and the Exit/Flush control commands, which pass through the
// same channel as ordinary records so that ordering against preceding
// Emit records is preserved.
type Record struct {
	// Command tells every stage what to do with this record. It is set
	// once at construction and never rewritten.
	Command command.Command

	// Level is the severity. Meaningless for non-Emit commands.
	Level level.Level

	// Target is the logical source of the record (a logger name, a
	// package path, a component) — analogous to a log target/tag.
	Target string

	// Args is the already-rendered message text. logflow does not
	// support structured per-record fields; Args is the whole message
	// body.
	Args string

	// ModulePath, File, Line identify the call site. Line is nil when
	// unknown or when the formatter is configured to omit it.
	ModulePath string
	File       string
	Line       *uint32

	// Time is captured by the producer, before the record ever reaches
	// the ingress channel.
	Time time.Time

	// Formatted holds the rendered line once the formatter worker has
	// processed the record. It is empty until then, unless the record
	// was produced by Print, which pre-populates it and bypasses
	// formatting entirely.
	Formatted string
}

// NewEmit builds an ordinary Emit record captured at time t.
func NewEmit(t time.Time, lvl level.Level, target, args, modulePath, file string, line *uint32) Record {
	return Record{
		Command:    command.NewEmit(),
		Level:      lvl,
		Target:     target,
		Args:       args,
		ModulePath: modulePath,
		File:       file,
		Line:       line,
		Time:       t,
	}
}

// NewPrint builds a record that carries pre-formatted text and
// therefore skips the formatter worker's Format call.
func NewPrint(t time.Time, formatted string) Record {
	return Record{
		Command:   command.NewEmit(),
		Level:     level.Info,
		Time:      t,
		Formatted: formatted,
	}
}

// NewExit builds the poison-pill record.
func NewExit(t time.Time) Record {
	return Record{Command: command.NewExit(), Time: t}
}

// NewFlush builds the record that carries the flush barrier command.
func NewFlush(t time.Time, cmd command.Command) Record {
	return Record{Command: cmd, Time: t}
}

// IsEmit reports whether this record should be rendered and delivered
// to sinks.
func (r Record) IsEmit() bool { return r.Command.Kind == command.Emit }

// IsExit reports whether this is the poison-pill record.
func (r Record) IsExit() bool { return r.Command.Kind == command.Exit }

// IsFlush reports whether this record carries a flush barrier token.
func (r Record) IsFlush() bool { return r.Command.Kind == command.Flush }
