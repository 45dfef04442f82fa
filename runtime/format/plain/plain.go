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

// Package plain implements the spec-mandated fixed-width text
// formatter: a 29-column timestamp, level, module path, message, and
// an optional "file:line" suffix gated on severity.
package plain

import (
	"fmt"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/runtime/format"
)

var _ format.Formatter = (*Formatter)(nil)

const timestampLayout = "2006-01-02 15:04:05.000000"

// Formatter is the default, dependency-free text formatter.
type Formatter struct {
	// DisplayLineLevel gates when "file:line" is appended: records at
	// this level or more severe get the call site, quieter records do
	// not. Defaults to level.Warn.
	DisplayLineLevel level.Level

	// DurationZone shifts the record's timestamp before rendering,
	// captured once at construction time (the host's local offset
	// from UTC) rather than recomputed per record.
	DurationZone time.Duration
}

// New returns a Formatter with the host's local UTC offset captured
// once, and DisplayLineLevel defaulted to level.Warn.
func New() *Formatter {
	_, offset := time.Now().Zone()
	return &Formatter{
		DisplayLineLevel: level.Warn,
		DurationZone:     time.Duration(offset) * time.Second,
	}
}

// Format implements format.Formatter.
func (f *Formatter) Format(r *record.Record) (string, bool) {
	if !r.IsEmit() {
		return "", false
	}

	ts := r.Time.UTC().Add(f.DurationZone).Format(timestampLayout)

	if r.Level >= f.DisplayLineLevel {
		var line uint32
		if r.Line != nil {
			line = *r.Line
		}
		return fmt.Sprintf("%-29s %s %s - %s  %s:%d\n",
			ts, r.Level, r.ModulePath, r.Args, r.File, line), true
	}
	return fmt.Sprintf("%-29s %s %s - %s\n", ts, r.Level, r.ModulePath, r.Args), true
}
