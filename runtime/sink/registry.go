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

// Package sink wires concrete sink implementations (file, stdout,
// memory, group) into the generic runtime/registry, keyed by kind, so
// runtime/pipeline can resolve a SinkDef's Kind string into
// a live apis/sink.Sink without importing any concrete sink package
// directly.
package sink

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	asink "dirpx.dev/logflow/apis/sink"
	"dirpx.dev/logflow/runtime/diag"
	"dirpx.dev/logflow/runtime/registry"
	"dirpx.dev/logflow/runtime/sink/file"
	"dirpx.dev/logflow/runtime/sink/group"
	"dirpx.dev/logflow/runtime/sink/memory"
	"dirpx.dev/logflow/runtime/sink/stdout"
)

// Registry is the process-wide sink registry, case-insensitive by
// kind for convenience ("File" and "file" resolve the same builder).
var Registry = registry.New[asink.Sink, any](registry.WithCaseFoldLower())

// packageDiag is handed to every sink built by this registry that
// needs to report absorbed errors (currently only "file", for its
// background pack/retention worker). SetDiag lets a CLI or test swap
// it in before the first Build call; it defaults to a no-op logger.
var packageDiag = diag.Nop()

// SetDiag installs the diagnostic logger every sink this registry
// builds from now on will report absorbed errors to.
func SetDiag(d diag.Logger) { packageDiag = d }

func init() {
	registry.MustRegister[asink.Sink, any](Registry, registry.Key{Kind: "sink", Name: "stdout"},
		registry.BuilderFunc[asink.Sink, any](func(ctx context.Context, name string, spec any) (asink.Sink, error) {
			return stdout.New(name, nil), nil
		}))

	registry.MustRegister[asink.Sink, any](Registry, registry.Key{Kind: "sink", Name: "memory"},
		registry.BuilderFunc[asink.Sink, any](func(ctx context.Context, name string, spec any) (asink.Sink, error) {
			return memory.New(name), nil
		}))

	registry.MustRegister[asink.Sink, any](Registry, registry.Key{Kind: "sink", Name: "file"},
		registry.BuilderFunc[asink.Sink, any](func(ctx context.Context, name string, spec any) (asink.Sink, error) {
			fo := decodeFileOptions(spec)
			if fo.Diag == nil {
				d := packageDiag.With("sink." + name)
				fo.Diag = &d
			}
			return file.New(name, fo)
		}))

	registry.MustRegister[asink.Sink, any](Registry, registry.Key{Kind: "sink", Name: "group"},
		registry.BuilderFunc[asink.Sink, any](func(ctx context.Context, name string, spec any) (asink.Sink, error) {
			return buildGroup(ctx, name, spec)
		}))
}

// GroupMember names one member of a "group" sink: which registered
// kind builds it and that kind's own options, keyed by the member's
// own sink name.
type GroupMember struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Options any    `yaml:"options"`
}

// buildGroup builds every member sink through this same registry and
// assembles them under one runtime/sink/group.Group, so a single
// configured "sink" in a Specification can fan out to several
// concrete destinations (e.g. stdout and a file) without the engine
// ever knowing there is more than one.
func buildGroup(ctx context.Context, name string, spec any) (asink.Sink, error) {
	members, err := decodeGroupMembers(spec)
	if err != nil {
		return nil, fmt.Errorf("sink group %q: %w", name, err)
	}
	g := group.New(name)
	for _, m := range members {
		s, err := Build(ctx, m.Kind, m.Name, m.Options)
		if err != nil {
			return nil, fmt.Errorf("sink group %q: member %q: %w", name, m.Name, err)
		}
		if err := g.Add(s); err != nil {
			return nil, fmt.Errorf("sink group %q: %w", name, err)
		}
	}
	return g, nil
}

func decodeGroupMembers(spec any) ([]GroupMember, error) {
	if members, ok := spec.([]GroupMember); ok {
		return members, nil
	}
	if spec == nil {
		return nil, nil
	}
	b, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal group members: %w", err)
	}
	var members []GroupMember
	if err := yaml.Unmarshal(b, &members); err != nil {
		return nil, fmt.Errorf("unmarshal group members: %w", err)
	}
	return members, nil
}

// fileYAMLOptions is the document-decodable subset of file.Options.
// Rolling, Retention, and Packer are interfaces with no YAML schema of
// their own; a caller needing a non-default policy builds file.Options
// programmatically and passes it to Build directly instead of routing
// it through a config document.
type fileYAMLOptions struct {
	Dir      string `yaml:"dir"`
	TempName string `yaml:"tempName"`
}

// decodeFileOptions accepts either an already-built file.Options
// (programmatic construction) or the map[string]any a YAML decoder
// produces for SinkDef.Options, and normalizes either into
// file.Options. An unrecognized shape falls back to the current
// directory so a misconfigured sink still starts.
func decodeFileOptions(spec any) file.Options {
	if opts, ok := spec.(file.Options); ok {
		return opts
	}
	if spec == nil {
		return file.Options{Dir: "."}
	}
	b, err := yaml.Marshal(spec)
	if err != nil {
		return file.Options{Dir: "."}
	}
	var y fileYAMLOptions
	if err := yaml.Unmarshal(b, &y); err != nil {
		return file.Options{Dir: "."}
	}
	if y.Dir == "" {
		y.Dir = "."
	}
	return file.Options{Dir: y.Dir, TempName: y.TempName}
}

// Build constructs a sink instance from the registered builder for
// (kind, name).
func Build(ctx context.Context, kind, name string, spec any) (asink.Sink, error) {
	return Registry.Build(ctx, registry.Key{Kind: "sink", Name: kind}, name, spec)
}

// Seal prevents further registrations, called once all init()
// functions across the binary have run.
func Seal() { Registry.Seal() }
