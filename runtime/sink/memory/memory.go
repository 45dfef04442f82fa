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

// Package memory implements an in-memory apis/sink.Sink, useful for
// engine tests and for the logflowctl CLI's demo mode where writing to
// a real destination is not the point.
package memory

import (
	"context"
	"sync"

	"dirpx.dev/logflow/apis/sink"
)

// Sink accumulates every formatted line it receives. Safe for
// concurrent reads via Lines while a worker goroutine calls DoLogs,
// since the apis/sink.Sink contract only promises DoLogs/Flush are
// single-writer.
type Sink struct {
	name string

	mu    sync.Mutex
	lines []string
}

// New creates a named, empty in-memory sink.
func New(name string) *Sink {
	return &Sink{name: name}
}

func (s *Sink) Name() string { return s.name }

func (s *Sink) DoLogs(ctx context.Context, batch sink.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range batch {
		if !r.IsEmit() || r.Formatted == "" {
			continue
		}
		s.lines = append(s.lines, r.Formatted)
	}
	return nil
}

func (s *Sink) Flush(ctx context.Context) error { return nil }

// Lines returns a snapshot copy of every line accepted so far.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Reset clears the accumulated lines.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
