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

// Package filter defines the pre-ingress filter chain (C3): a small,
// ordered set of checks evaluated on the producer's own goroutine,
// before a record is ever handed to the pipeline.
package filter

import (
	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

// Filter decides whether a record should continue towards the
// ingress channel. Implementations must not block and must not
// mutate shared state: they run synchronously on every producer
// goroutine that calls Emit, never on the formatter or sink workers.
type Filter interface {
	// Allow reports whether r should proceed. Returning false drops
	// the record before it ever reaches the ingress channel.
	Allow(r *record.Record) bool
}

// Chain evaluates a sequence of Filters in order; the first one that
// rejects a record short-circuits the rest.
type Chain []Filter

// Allow reports whether every filter in the chain allows r.
func (c Chain) Allow(r *record.Record) bool {
	for _, f := range c {
		if f == nil {
			continue
		}
		if !f.Allow(r) {
			return false
		}
	}
	return true
}

// LevelFilter drops any record whose level is below Min. Exit and
// Flush records always pass, regardless of their (meaningless) level.
type LevelFilter struct {
	Min level.Level
}

// Allow implements Filter.
func (f LevelFilter) Allow(r *record.Record) bool {
	if !r.IsEmit() {
		return true
	}
	return r.Level >= f.Min
}
