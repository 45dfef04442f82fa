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

// Package format defines the record-to-text contract used by the
// formatter worker (C2/C5), plus three implementations: the
// spec-mandated fixed-width plain text formatter (runtime/format/plain)
// and two zap-backed structured variants (runtime/format/console,
// runtime/format/json).
package format

import "dirpx.dev/logflow/apis/record"

// Formatter renders a record into its final textual form. It is called
// exactly once per Emit record, always from the single dedicated
// formatter worker goroutine — implementations do not need to be safe
// for concurrent use.
//
// Format returns ok=false for records that produce no output (Exit and
// Flush carry no payload to render). The formatter worker still
// publishes such records, and every sink skips an entry whose
// Formatted field is empty.
type Formatter interface {
	Format(r *record.Record) (line string, ok bool)
}
