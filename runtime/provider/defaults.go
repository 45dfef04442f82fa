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

package provider

import (
	"context"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/apis/provider"
)

// Defaults is the lowest-priority Provider (priority 0 by
// convention): a single stdout sink at Info level.
type Defaults struct{}

func (Defaults) Name() string { return "defaults" }

func (Defaults) Priority() int { return 0 }

func (Defaults) Snapshot(ctx context.Context) (*provider.Specification, string, error) {
	lvl := level.Info
	return &provider.Specification{
		MinLevel: &lvl,
		Pipeline: &pipeline.Specification{
			Sinks: []string{"stdout"},
		},
		Sinks: []string{"stdout"},
	}, "defaults", nil
}

var _ provider.Provider = Defaults{}

// Static wraps an already-built Specification as a Provider, used for
// CLI-flag overrides (highest priority by convention: 40).
type Static struct {
	Spec     *provider.Specification
	Pri      int
	SrcLabel string
}

func (s Static) Name() string {
	if s.SrcLabel != "" {
		return s.SrcLabel
	}
	return "static"
}

func (s Static) Priority() int { return s.Pri }

func (s Static) Snapshot(ctx context.Context) (*provider.Specification, string, error) {
	return s.Spec, s.Name(), nil
}

var _ provider.Provider = Static{}
