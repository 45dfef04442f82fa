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

// Package registry provides a small generic, concurrency-safe registry
// mapping a (Kind, Name) key to a Builder, used by runtime/sink and
// runtime/plugin to turn declarative apis specifications into
// concrete instances without those apis packages knowing about any
// concrete implementation.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Key identifies a registered builder. Kind is the category (e.g.
// "sink", "filter"); Name is the concrete implementation (e.g.
// "file", "stdout", "level").
type Key struct {
	Kind string
	Name string
}

func (k Key) String() string {
	return k.Kind + "/" + k.Name
}

// Builder constructs a T from a configuration value C.
type Builder[T any, C any] interface {
	Build(ctx context.Context, name string, spec C) (T, error)
}

// BuilderFunc adapts a plain function to Builder.
type BuilderFunc[T any, C any] func(ctx context.Context, name string, spec C) (T, error)

// Build calls f(ctx, name, spec).
func (f BuilderFunc[T, C]) Build(ctx context.Context, name string, spec C) (T, error) {
	return f(ctx, name, spec)
}

// Option configures a Registry at construction time.
type Option func(*options)

type options struct {
	caseFoldLower bool
}

// WithCaseFoldLower normalizes Key.Kind/Key.Name to lowercase on every
// lookup and registration, so "File" and "file" resolve to the same
// entry.
func WithCaseFoldLower() Option {
	return func(o *options) { o.caseFoldLower = true }
}

// Registry is a concurrency-safe map from Key to Builder[T, C]. A
// Registry can be Sealed once every init() has registered its
// builders, turning further registration attempts into errors so a
// typo'd late Register call fails loudly instead of silently losing a
// builder.
type Registry[T any, C any] struct {
	mu       sync.RWMutex
	builders map[Key]Builder[T, C]
	sealed   bool
	opts     options
}

// New creates an empty Registry.
func New[T any, C any](opts ...Option) *Registry[T, C] {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return &Registry[T, C]{
		builders: make(map[Key]Builder[T, C]),
		opts:     o,
	}
}

func (r *Registry[T, C]) normalize(k Key) Key {
	if r.opts.caseFoldLower {
		k.Kind = strings.ToLower(k.Kind)
		k.Name = strings.ToLower(k.Name)
	}
	return k
}

// Register adds a builder under the given key. It returns an error if
// the registry is sealed or the key is already taken.
func (r *Registry[T, C]) Register(k Key, b Builder[T, C]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("registry: sealed, cannot register %s", k)
	}
	k = r.normalize(k)
	if _, exists := r.builders[k]; exists {
		return fmt.Errorf("registry: %s already registered", k)
	}
	r.builders[k] = b
	return nil
}

// MustRegister panics if Register fails. Intended for package init().
func MustRegister[T any, C any](r *Registry[T, C], k Key, b Builder[T, C]) {
	if err := r.Register(k, b); err != nil {
		panic(err)
	}
}

// Seal prevents any further registrations. Idempotent.
func (r *Registry[T, C]) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Build looks up the builder registered for k and invokes it with
// name and spec. name is usually k.Name but is passed separately so a
// single builder can be registered under one Kind and instantiate
// many differently-named instances.
func (r *Registry[T, C]) Build(ctx context.Context, k Key, name string, spec C) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[r.normalize(k)]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, fmt.Errorf("registry: no builder registered for %s", k)
	}
	return b.Build(ctx, name, spec)
}

// Keys returns every registered key, sorted for deterministic output
// (diagnostics, CLI listing).
func (r *Registry[T, C]) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.builders))
	for k := range r.builders {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}
