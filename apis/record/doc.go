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

// Package record defines the canonical log event shape used across
// logflow.
//
// This package intentionally contains only stable, minimal data
// structures and the command sum type (see apis/command) that rides
// alongside every record. It performs no I/O, formatting, or registry
// logic: encoding lives in runtime/format, delivery lives in apis/sink.
//
// # Record contract
//
// A Record is a value type produced on the caller's goroutine and
// handed to the pipeline by value. Once it enters the ingress channel,
// only the formatter worker may set Formatted; every other field is
// immutable for the rest of the record's lifetime.
//
// # Separation of concerns
//
//   - Formatting is performed once by runtime/format, on the dedicated
//     formatter worker goroutine.
//   - Filtering happens before a record ever reaches the ingress
//     channel (see apis/filter), on the producer's own goroutine.
//   - Delivery to outputs is handled by sinks (see apis/sink), which
//     accept whole batches of already-formatted records.
package record
