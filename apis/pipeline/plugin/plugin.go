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
	"dirpx.dev/logflow/apis/pipeline/stage"
)

// Plugin is a unit of pre-ingress record processing: logflow's only
// plugin role is the filter chain (C3), built declaratively from a
// Specification and resolved by Kind through the runtime registry.
//
// Plugins implement the pipeline/stage.Stage interface and can be
// composed into an ordered chain.
type Plugin interface {
	stage.Stage
}

// Filter is a Plugin that decides whether a record should continue.
// It exists purely to group filter-kind builders by purpose; it adds
// no methods beyond Plugin.
type Filter interface{ Plugin }
