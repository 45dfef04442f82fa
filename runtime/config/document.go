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

// Package config reads the top-level logflow configuration document:
// the parts apis/provider.Specification deliberately leaves out
// because they require the runtime sink registry to interpret (a
// sink's Kind and its registry-specific Options), plus the provider-
// mergeable Specification fields that document references by name.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/logflow/apis/level"
	apipipeline "dirpx.dev/logflow/apis/pipeline"
	runtimepipeline "dirpx.dev/logflow/runtime/pipeline"
)

// SinkDef names, for one sink, which registry kind builds it and the
// opaque options that kind's Builder expects, plus the worker queue
// capacity the engine allocates for it. It mirrors
// runtime/pipeline.SinkDef with YAML tags for document decoding.
type SinkDef struct {
	Kind          string `yaml:"kind"`
	Options       any    `yaml:"options"`
	QueueCapacity int    `yaml:"queueCapacity"`
}

// Document is the whole logflow config file: the provider-mergeable
// Specification fields, plus the Sinks map a Specification can only
// reference by name.
type Document struct {
	MinLevel level.Level `yaml:"minLevel"`

	// ChanLen is the ingress channel capacity (spec.md's chan_len).
	// <=0 selects a large fixed buffer (65536 records) in the engine;
	// the channel is not truly unbounded, and producers block once that
	// buffer is full.
	ChanLen int `yaml:"chanLen"`

	Labels   map[string]string         `yaml:"labels"`
	Pipeline apipipeline.Specification `yaml:"pipeline"`
	Sinks    map[string]SinkDef        `yaml:"sinks"`
}

// Load reads and decodes a Document from path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := doc.MinLevel.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &doc, nil
}

// SinkDefs converts Document.Sinks to the shape runtime/pipeline.Builder
// expects.
func (d *Document) SinkDefs() map[string]runtimepipeline.SinkDef {
	out := make(map[string]runtimepipeline.SinkDef, len(d.Sinks))
	for name, sd := range d.Sinks {
		out[name] = runtimepipeline.SinkDef{
			Kind:          sd.Kind,
			Options:       sd.Options,
			QueueCapacity: sd.QueueCapacity,
		}
	}
	return out
}
