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
	"dirpx.dev/logflow/apis/pipeline/plugin"
)

// Specification is a declarative description of how the logging
// pipeline should be assembled.
//
// It does NOT execute anything, it is just data: runtime/pipeline
// takes this spec, resolves Pre against the filter-plugin registry and
// Sinks against the sink registry, and builds the actual engine.
//
// There is no post-sink plugin stage: logflow's pipeline ends at
// delivery, it does not support post-processing taps.
type Specification struct {
	// Pre is an ordered list of filter plugins that run before a
	// record ever reaches the ingress channel (C3). Use this for
	// anything that may DROP a record.
	Pre []plugin.Specification `json:"pre,omitempty" yaml:"pre,omitempty"`

	// Sinks is a list of sink IDs/names that the runtime must fan out
	// to. Concrete sink configuration lives in the top-level config
	// document, keyed by the same names.
	Sinks []string `json:"sinks,omitempty" yaml:"sinks,omitempty"`
}
