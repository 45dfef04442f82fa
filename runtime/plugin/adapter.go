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

package plugin

import (
	"context"

	"dirpx.dev/logflow/apis/filter"
	"dirpx.dev/logflow/apis/pipeline/stage"
	"dirpx.dev/logflow/apis/record"
)

// AsFilter adapts a declarative stage.Stage — built via the plugin
// registry from a Specification — to the synchronous apis/filter.Filter
// contract the engine's producer-side gate actually runs. Disabled
// stages always allow; Enabled() is consulted on every Allow call.
func AsFilter(s stage.Stage) filter.Filter {
	return &stageFilter{stage: s}
}

type stageFilter struct {
	stage stage.Stage
}

func (f *stageFilter) Allow(r *record.Record) bool {
	if !f.stage.Enabled() {
		return true
	}
	_, decision, err := f.stage.Process(context.Background(), *r)
	if err != nil {
		// A stage that cannot evaluate a record fails open: dropping
		// on error would silently swallow logs the caller meant to see.
		return true
	}
	return decision == stage.Continue
}

var _ filter.Filter = (*stageFilter)(nil)
