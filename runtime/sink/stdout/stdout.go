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

// Package stdout implements an apis/sink.Sink that writes formatted
// lines to an io.Writer, defaulting to os.Stdout.
package stdout

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"dirpx.dev/logflow/apis/sink"
)

// Sink writes every formatted line to w, buffered, flushing on
// Flush and on every DoLogs call so output is never stuck waiting for
// the next batch.
type Sink struct {
	name string
	w    *bufio.Writer

	mu sync.Mutex
}

// New wraps w (os.Stdout if nil) in a buffered writer.
func New(name string, w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return &Sink{name: name, w: bufio.NewWriter(w)}
}

func (s *Sink) Name() string { return s.name }

func (s *Sink) DoLogs(ctx context.Context, batch sink.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range batch {
		if !r.IsEmit() || r.Formatted == "" {
			continue
		}
		if _, err := s.w.WriteString(r.Formatted); err != nil {
			return err
		}
	}
	return s.w.Flush()
}

func (s *Sink) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}
