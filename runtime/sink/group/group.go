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

// Package group implements apis/sink.Group: a fan-out sink that
// forwards every batch to a fixed set of member sinks under one
// logical name, so one engine sink worker can drive, say, both a file
// sink and a stdout sink without the engine knowing there are two.
package group

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"dirpx.dev/logflow/apis/sink"
)

// Group is the concrete, concurrency-safe apis/sink.Group.
type Group struct {
	name string

	mu      sync.RWMutex
	members map[string]sink.Sink
}

// New creates an empty named Group.
func New(name string) *Group {
	return &Group{name: name, members: make(map[string]sink.Sink)}
}

func (g *Group) Name() string { return g.name }

func (g *Group) Add(s sink.Sink) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.members[s.Name()]; exists {
		return fmt.Errorf("group %q: sink %q already registered", g.name, s.Name())
	}
	g.members[s.Name()] = s
	return nil
}

func (g *Group) Remove(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.members[name]; !exists {
		return fmt.Errorf("group %q: sink %q not found", g.name, name)
	}
	delete(g.members, name)
	return nil
}

func (g *Group) List() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.members))
	for name := range g.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DoLogs fans the batch out to every member, in List order, and
// collects every member's error into a single joined error. A failing
// member does not stop delivery to the rest.
func (g *Group) DoLogs(ctx context.Context, batch sink.Batch) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	for _, name := range g.sortedNamesLocked() {
		if err := g.members[name].DoLogs(ctx, batch); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Flush flushes every member, collecting errors the same way DoLogs does.
func (g *Group) Flush(ctx context.Context) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	for _, name := range g.sortedNamesLocked() {
		if err := g.members[name].Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every member that implements io.Closer, in List order,
// joining their errors. It lets a Group stand in for a file sink (or
// any other closer) without the engine's sinkLoop needing to know the
// group has members at all.
func (g *Group) Close() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	for _, name := range g.sortedNamesLocked() {
		closer, ok := g.members[name].(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (g *Group) sortedNamesLocked() []string {
	names := make([]string, 0, len(g.members))
	for name := range g.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ sink.Group = (*Group)(nil)
