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

// Package plugin wires concrete filter-chain stages into the generic
// runtime/registry, keyed by kind, so runtime/pipeline can resolve an
// apis/pipeline/plugin.Specification's Kind string into a live
// apis/pipeline/stage.Stage.
package plugin

import (
	"context"
	"fmt"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/pipeline/stage"
	"dirpx.dev/logflow/apis/record"
)

// LevelSpec configures the "level" filter stage.
type LevelSpec struct {
	MinLevel level.Level `json:"minLevel" yaml:"minLevel"`
}

// levelStage drops any Emit record below MinLevel. Non-Emit records
// (Exit/Flush) always continue, since they carry no severity.
type levelStage struct {
	name string
	min  level.Level
}

func (s *levelStage) Name() string { return s.name }

func (s *levelStage) Enabled() bool { return true }

func (s *levelStage) Process(ctx context.Context, r record.Record) (record.Record, stage.Decision, error) {
	if !r.IsEmit() || r.Level >= s.min {
		return r, stage.Continue, nil
	}
	return r, stage.Drop, nil
}

// NewLevelStage builds a level-gating stage named name.
func NewLevelStage(name string, min level.Level) stage.Stage {
	return &levelStage{name: name, min: min}
}

// buildLevel adapts NewLevelStage to the registry.Builder shape.
func buildLevel(ctx context.Context, name string, spec LevelSpec) (stage.Stage, error) {
	if err := spec.MinLevel.Validate(); err != nil {
		return nil, fmt.Errorf("plugin level %q: %w", name, err)
	}
	return NewLevelStage(name, spec.MinLevel), nil
}
