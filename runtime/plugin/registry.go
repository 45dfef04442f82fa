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
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/logflow/apis/pipeline/stage"
	"dirpx.dev/logflow/runtime/registry"
)

// Registry is the process-wide filter-stage registry, keyed by plugin
// kind ("level", ...).
var Registry = registry.New[stage.Stage, any](registry.WithCaseFoldLower())

func init() {
	registry.MustRegister[stage.Stage, any](Registry, registry.Key{Kind: "filter", Name: "level"},
		registry.BuilderFunc[stage.Stage, any](func(ctx context.Context, name string, raw any) (stage.Stage, error) {
			spec, err := decode[LevelSpec](raw)
			if err != nil {
				return nil, fmt.Errorf("plugin level %q: %w", name, err)
			}
			return buildLevel(ctx, name, spec)
		}))
}

// Build constructs a filter stage from the registered builder for
// kind, decoding raw (an apis/pipeline/plugin.Specification.Config
// value) into that builder's expected shape.
func Build(ctx context.Context, kind, name string, raw any) (stage.Stage, error) {
	return Registry.Build(ctx, registry.Key{Kind: "filter", Name: kind}, name, raw)
}

// Seal prevents further registrations.
func Seal() { Registry.Seal() }

// decode round-trips an opaque Specification.Config value (typically
// a map[string]any from a decoded YAML/JSON document, or already the
// concrete T if constructed programmatically) into T via YAML, since
// every config shape in this module already implements
// encoding.TextMarshaler-compatible YAML tags.
func decode[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	if v, ok := raw.(T); ok {
		return v, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("marshal config: %w", err)
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, fmt.Errorf("unmarshal config: %w", err)
	}
	return out, nil
}
