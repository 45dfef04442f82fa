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

// Package file implements the rolling file sink (C9/C10/C11): an
// always-open active file named after Options.TempName, rotated by a
// policy.Rolling strategy into a timestamped sibling, pruned by a
// policy.Retention strategy, and optionally archived by a
// policy.Packer — all off a single background goroutine so a slow
// pack/prune never blocks DoLogs.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/logflow/apis/sink"
)

// Sink is a rolling file sink. A Sink is driven by exactly one worker
// goroutine per the apis/sink.Sink contract, so its own fields need no
// locking.
type Sink struct {
	name string
	opts Options

	active    *os.File
	createdAt time.Time
	size      int64

	packJobs chan packJob
	packDone chan struct{}
}

type packJob struct {
	// id correlates this job's pack and retention log lines; it has no
	// bearing on which file gets packed.
	id   string
	path string
}

// New opens (or creates) the active file under opts.Dir and starts the
// background pack/prune worker.
func New(name string, opts Options) (*Sink, error) {
	opts = opts.withDefaults()
	if opts.Dir == "" {
		return nil, fmt.Errorf("file sink %q: Dir must not be empty", name)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("file sink %q: mkdir %s: %w", name, opts.Dir, err)
	}

	s := &Sink{
		name:     name,
		opts:     opts,
		packJobs: make(chan packJob, 16),
		packDone: make(chan struct{}),
	}
	if err := s.openActive(); err != nil {
		return nil, err
	}
	go s.packLoop()
	return s, nil
}

func (s *Sink) Name() string { return s.name }

func (s *Sink) activePath() string {
	return filepath.Join(s.opts.Dir, s.opts.TempName)
}

func (s *Sink) openActive() error {
	path := s.activePath()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("file sink %q: open %s: %w", s.name, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file sink %q: stat %s: %w", s.name, path, err)
	}
	s.active = f
	s.createdAt = time.Now()
	s.size = info.Size()
	return nil
}

// DoLogs appends every Emit record's Formatted text to the active
// file, then checks the rolling policy once for the whole batch.
func (s *Sink) DoLogs(ctx context.Context, batch sink.Batch) error {
	var buf []byte
	for _, r := range batch {
		if !r.IsEmit() || r.Formatted == "" {
			continue
		}
		buf = append(buf, r.Formatted...)
	}
	if len(buf) > 0 {
		n, err := s.active.Write(buf)
		s.size += int64(n)
		if err != nil {
			return fmt.Errorf("file sink %q: write: %w", s.name, err)
		}
	}

	if s.opts.Rolling.ShouldRotate(s.createdAt, s.size, time.Now()) {
		if err := s.rotate(); err != nil {
			return fmt.Errorf("file sink %q: rotate: %w", s.name, err)
		}
	}
	return nil
}

// Flush fsyncs the active file.
func (s *Sink) Flush(ctx context.Context) error {
	if s.active == nil {
		return nil
	}
	if err := s.active.Sync(); err != nil {
		return fmt.Errorf("file sink %q: sync: %w", s.name, err)
	}
	return nil
}

// rotate closes the active file, renames it to a timestamped sibling,
// reopens a fresh active file, and hands the rotated-out file to the
// background pack/prune worker.
func (s *Sink) rotate() error {
	if err := s.active.Close(); err != nil {
		return fmt.Errorf("close active: %w", err)
	}

	rotatedName := rotatedName(s.opts.TempName, time.Now())
	oldPath := s.activePath()
	newPath := filepath.Join(s.opts.Dir, rotatedName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", oldPath, newPath, err)
	}

	if err := s.openActive(); err != nil {
		return err
	}

	select {
	case s.packJobs <- packJob{id: uuid.NewString(), path: newPath}:
	default:
		// Pack queue is full; the file stays on disk as a plain ".log"
		// and the next retention pass still prunes it by mtime.
	}
	return nil
}

// rotatedName mirrors the naming scheme "temp.log" ->
// "temp2026-07-29T10-00-00.000000.log": ".log" is replaced by a
// timestamp immediately followed by ".log", so every rotated sibling
// still shares the active file's stem as a prefix.
func rotatedName(tempName string, at time.Time) string {
	ts := at.Format("2006-01-02T15-04-05.000000")
	return strings.Replace(tempName, ".log", ts+".log", 1)
}

// packLoop owns archival and pruning so a slow Packer or a large
// Retention scan never blocks DoLogs.
func (s *Sink) packLoop() {
	defer close(s.packDone)
	for job := range s.packJobs {
		s.packOne(job)
		if n, err := s.opts.Retention.DoKeep(s.opts.Dir, s.opts.TempName); err != nil {
			s.opts.Diag.Error(err, fmt.Sprintf("pack %s: retention scanned %d, failed", job.id, n))
		}
	}
}

func (s *Sink) packOne(job packJob) {
	f, err := os.Open(job.path)
	if err != nil {
		s.opts.Diag.Error(err, "pack "+job.id+": open rotated file")
		return
	}
	defer f.Close()

	consumed, err := s.opts.Packer.DoPack(f, job.path)
	if err != nil {
		s.opts.Diag.Error(err, "pack "+job.id+": DoPack failed")
		return
	}
	if consumed {
		f.Close()
		if err := os.Remove(job.path); err != nil {
			s.opts.Diag.Error(err, "pack "+job.id+": remove packed source")
		}
	}
}

// Close stops the background worker and closes the active file. It is
// not part of apis/sink.Sink: the engine calls it once, after the
// sink's worker goroutine has drained Exit.
func (s *Sink) Close() error {
	close(s.packJobs)
	<-s.packDone
	if s.active == nil {
		return nil
	}
	return s.active.Close()
}
