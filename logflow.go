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

// Package logflow is the process-wide facade over a single running
// pipeline. Init binds exactly one *Logger to the package for the
// life of the process, the way a global logging facade conventionally
// offers package-level Emit/Flush/Exit calls without every caller
// having to thread an instance through.
//
// Programs that need more than one independent pipeline in the same
// process should build and hold their own *Logger (via New) instead
// of using the package-level bindings.
package logflow

import (
	"context"
	"errors"
	"sync/atomic"

	"dirpx.dev/logflow/apis"
	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/runtime/engine"
)

// ErrAlreadyInitialized is returned by Init when the package-wide
// facade has already been bound.
var ErrAlreadyInitialized = errors.New("logflow: already initialized")

// ErrNotInitialized is returned by the package-level Emit/Print/Flush/
// Exit functions when Init has not been called yet.
var ErrNotInitialized = errors.New("logflow: not initialized")

// ErrNoSinks mirrors engine.ErrNoSinks: a pipeline with no configured
// sink is always a configuration mistake.
var ErrNoSinks = engine.ErrNoSinks

// Logger is a running pipeline bound to an apis.Logger contract. It is
// safe for concurrent use by any number of goroutines.
type Logger struct {
	e *engine.Engine
}

// New builds a standalone Logger from cfg without touching the
// package-wide facade binding. Use this when a single process needs
// more than one independent pipeline.
func New(cfg pipeline.Config) (*Logger, error) {
	e, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Logger{e: e}, nil
}

func (l *Logger) Enabled(lvl level.Level) bool { return l.e.Enabled(lvl) }

func (l *Logger) Emit(ctx context.Context, r record.Record) error { return l.e.Emit(ctx, r) }

func (l *Logger) Print(ctx context.Context, line string) error { return l.e.Print(ctx, line) }

func (l *Logger) Flush(ctx context.Context) error { return l.e.Flush(ctx) }

func (l *Logger) Exit() error { return l.e.Exit() }

var _ apis.Logger = (*Logger)(nil)

var global atomic.Pointer[Logger]

// Init binds a single process-wide Logger built from cfg. A second
// call returns ErrAlreadyInitialized without touching the existing
// binding — mirroring a one-shot OnceLock-style global, never a
// reconfigurable singleton.
func Init(cfg pipeline.Config) (*Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if !global.CompareAndSwap(nil, l) {
		_ = l.Exit()
		return nil, ErrAlreadyInitialized
	}
	return l, nil
}

// Emit delegates to the package-wide Logger bound by Init.
func Emit(ctx context.Context, r record.Record) error {
	l := global.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.Emit(ctx, r)
}

// Print delegates to the package-wide Logger bound by Init.
func Print(ctx context.Context, line string) error {
	l := global.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.Print(ctx, line)
}

// Flush delegates to the package-wide Logger bound by Init.
func Flush(ctx context.Context) error {
	l := global.Load()
	if l == nil {
		return ErrNotInitialized
	}
	return l.Flush(ctx)
}

// Exit delegates to the package-wide Logger bound by Init and clears
// the binding, allowing a later test process to call Init again.
func Exit() error {
	l := global.Load()
	if l == nil {
		return ErrNotInitialized
	}
	err := l.Exit()
	global.CompareAndSwap(l, nil)
	return err
}
