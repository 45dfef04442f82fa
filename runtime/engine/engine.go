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

// Package engine assembles a resolved apis/pipeline.Config into a
// running asynchronous pipeline: one ingress channel, a formatter
// worker (C5), and one worker per configured sink (C6/C7), coordinated
// by the flush/exit barrier protocol described in apis/command and
// internal/barrier.
//
// Engine is the concrete type behind both apis/pipeline.Pipeline (used
// by runtime/pipeline.Builder) and the logflow.Logger facade.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"dirpx.dev/logflow/apis"
	"dirpx.dev/logflow/apis/command"
	"dirpx.dev/logflow/apis/filter"
	"dirpx.dev/logflow/apis/health"
	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/pipeline"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
	"dirpx.dev/logflow/internal/barrier"
	"dirpx.dev/logflow/runtime/diag"
	"dirpx.dev/logflow/runtime/metrics"
)

// unboundedChanLen is the buffer size used to simulate an "unbounded"
// ingress channel when Config.ChanLen <= 0. A genuinely unbounded
// channel does not exist in Go; this is large enough that a bursty
// producer will not observe backpressure in practice while still
// bounding worst-case memory.
const unboundedChanLen = 1 << 16

// defaultSinkQueueLen is used when a SinkConfig.QueueCapacity is <= 0.
const defaultSinkQueueLen = 64

// ErrClosed is returned by Emit, Print, and Flush once Exit has been
// called.
var ErrClosed = errors.New("logflow: engine is closed")

// ErrNoSinks is returned by New when Config.Appends is empty: a
// pipeline with nowhere to deliver records is always a configuration
// mistake, never a valid degenerate case.
var ErrNoSinks = errors.New("logflow: no sinks configured")

type sinkWorker struct {
	name   string
	sink   sink.Sink
	ch     chan sink.Batch
	status *workerStatus
	diag   diag.Logger
}

// Engine is the concrete, running pipeline.
type Engine struct {
	cfg     pipeline.Config
	filters filter.Chain
	ingress chan record.Record

	sinks []*sinkWorker

	diag    diag.Logger
	metrics *metrics.Metrics

	formatterStatus *workerStatus

	wg       sync.WaitGroup
	exitOnce sync.Once
	closed   chan struct{}
}

// Options carries the engine-level dependencies that do not belong in
// apis/pipeline.Config (which must stay free of runtime-layer types).
// A nil Diag or Metrics defaults to a no-op logger and a fresh,
// unregistered collector set, respectively.
type Options struct {
	Diag    *diag.Logger
	Metrics *metrics.Metrics
}

// New starts an Engine from a fully resolved Config. The formatter
// worker and one worker per configured sink are started immediately.
func New(cfg pipeline.Config, opts ...Options) (*Engine, error) {
	if len(cfg.Appends) == 0 {
		return nil, ErrNoSinks
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	diagLogger := diag.Nop()
	if o.Diag != nil {
		diagLogger = *o.Diag
	}

	chanLen := cfg.ChanLen
	if chanLen <= 0 {
		chanLen = unboundedChanLen
	}

	e := &Engine{
		cfg:             cfg,
		filters:         append(filter.Chain{filter.LevelFilter{Min: cfg.Level}}, cfg.Filters...),
		ingress:         make(chan record.Record, chanLen),
		diag:            diagLogger.With("engine"),
		metrics:         o.Metrics,
		formatterStatus: newWorkerStatus("formatter"),
		closed:          make(chan struct{}),
	}

	for _, sc := range cfg.Appends {
		qlen := sc.QueueCapacity
		if qlen <= 0 {
			qlen = defaultSinkQueueLen
		}
		sw := &sinkWorker{
			name:   sc.Sink.Name(),
			sink:   sc.Sink,
			ch:     make(chan sink.Batch, qlen),
			status: newWorkerStatus("sink." + sc.Sink.Name()),
			diag:   diagLogger.With("sink." + sc.Sink.Name()),
		}
		e.sinks = append(e.sinks, sw)
	}

	e.wg.Add(1)
	go e.formatterLoop()
	for _, sw := range e.sinks {
		e.wg.Add(1)
		go e.sinkLoop(sw)
	}

	return e, nil
}

// Enabled reports whether lvl would survive the engine's built-in
// level gate. It does not evaluate the rest of the filter chain, which
// may depend on per-record content a caller cannot supply in advance.
func (e *Engine) Enabled(lvl level.Level) bool {
	return lvl >= e.cfg.Level
}

// Emit pushes a single record through the filter chain and, if it
// survives, onto the ingress channel. A full bounded channel blocks
// the caller until space is available or ctx is done — logflow's
// explicit choice to favor backpressure over silently dropping
// caller-visible Emit calls (see apis/pipeline.Config.ChanLen).
func (e *Engine) Emit(ctx context.Context, r record.Record) error {
	if e.isClosed() {
		return ErrClosed
	}
	if !e.filters.Allow(&r) {
		return nil
	}
	return e.send(ctx, r)
}

// Print delivers a pre-formatted line, bypassing the filter chain and
// the formatter worker entirely: it is meant for unconditional,
// already-rendered output (mirroring a raw Println passthrough), not
// another severity-gated log call.
func (e *Engine) Print(ctx context.Context, line string) error {
	if e.isClosed() {
		return ErrClosed
	}
	return e.send(ctx, record.NewPrint(time.Now(), line))
}

// Flush blocks until every sink has observed and drained everything
// queued ahead of this call, or ctx is done first.
func (e *Engine) Flush(ctx context.Context) error {
	if e.isClosed() {
		return ErrClosed
	}
	start := time.Now()
	tok := barrier.New()
	e.diag.Debug("flush " + tok.ID + " submitted")
	rec := record.NewFlush(time.Now(), command.NewFlush(tok))
	if err := e.send(ctx, rec); err != nil {
		tok.Release()
		return err
	}
	err := tok.Wait(ctx)
	e.metrics.ObserveFlush(time.Since(start))
	e.diag.Debug("flush " + tok.ID + " drained")
	return err
}

// Exit sends the poison pill and blocks until the formatter worker and
// every sink worker have finished. It is safe to call more than once;
// only the first call has effect.
//
// The send onto ingress is unconditionally blocking: closing e.closed
// only stops new Emit/Print/Flush calls from entering send, it does
// not release a producer already parked there because ingress was
// full. Exit therefore assumes its documented precondition — producers
// stop emitting before Exit is called — rather than forcing that
// producer out; a producer that keeps emitting past capacity after
// Exit has been called can make this call block indefinitely.
func (e *Engine) Exit() error {
	e.exitOnce.Do(func() {
		close(e.closed)
		e.ingress <- record.NewExit(time.Now())
	})
	e.wg.Wait()
	return nil
}

// Health reports the lifecycle state of the formatter worker and every
// sink worker.
func (e *Engine) Health(ctx context.Context) health.Report {
	agg := health.NewAggregator()
	agg.Add(e.formatterStatus.name, e.formatterStatus)
	for _, sw := range e.sinks {
		agg.Add(sw.status.name, sw.status)
	}
	return agg.Run(ctx)
}

func (e *Engine) isClosed() bool {
	select {
	case <-e.closed:
		return true
	default:
		return false
	}
}

func (e *Engine) send(ctx context.Context, r record.Record) error {
	select {
	case e.ingress <- r:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var (
	_ pipeline.Pipeline = (*Engine)(nil)
	_ apis.Logger       = (*Engine)(nil)
)
