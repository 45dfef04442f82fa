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

package engine

import (
	"context"
	"fmt"
	"io"

	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
	"dirpx.dev/logflow/internal/barrier"
)

// formatterLoop is the C5 worker: block for one record, drain
// whatever else is already buffered without blocking, format every
// Emit record exactly once, and fan the batch out to every sink
// worker. It runs until it has published a batch containing Exit,
// at which point it closes every sink channel and returns.
func (e *Engine) formatterLoop() {
	defer e.wg.Done()
	e.formatterStatus.setRunning()

	for {
		batch := []record.Record{<-e.ingress}

	drain:
		for {
			select {
			case r := <-e.ingress:
				batch = append(batch, r)
			default:
				break drain
			}
		}

		exitSeen := false
		for i := range batch {
			switch {
			case batch[i].IsExit():
				exitSeen = true
			case batch[i].IsEmit() && batch[i].Formatted == "":
				e.formatRecord(&batch[i])
			}
		}

		if exitSeen {
			e.formatterStatus.setDraining()
		}
		e.metrics.IngressDepth.Set(float64(len(e.ingress)))

		e.publish(batch)

		if exitSeen {
			for _, sw := range e.sinks {
				close(sw.ch)
			}
			e.formatterStatus.setStopped()
			return
		}
	}
}

// formatRecord calls the configured Formatter for a single record,
// recovering a panic from a caller-supplied Formatter so one bad
// record degrades to an empty line instead of crashing the formatter
// worker.
func (e *Engine) formatRecord(r *record.Record) {
	defer func() {
		if rec := recover(); rec != nil {
			e.diag.Error(fmt.Errorf("%v", rec), "formatter panicked, dropping line")
			r.Formatted = ""
		}
	}()
	if line, ok := e.cfg.Formatter.Format(r); ok {
		r.Formatted = line
	}
}

// publish fans batch out to every sink's queue with a non-blocking
// send: a full queue means that sink is slow or stuck, and the batch
// is dropped for that sink only (counted in SinkBatchDropped). Any
// flush token carried in batch must be cloned *before* the batch
// becomes observable to a sink worker: once a sink can see the token
// it can also race ahead to Release() it, so the clone that accounts
// for that sink's outstanding work has to already be registered by
// the time the send succeeds, not after. A dropped send releases the
// clone it just took instead of leaving the fan-out loop. The
// formatter's own share of the token is released last, once every
// sink has either accepted or dropped the batch.
func (e *Engine) publish(batch []record.Record) {
	var tokens []*barrier.Token
	for i := range batch {
		if batch[i].IsFlush() && batch[i].Command.Token != nil {
			tokens = append(tokens, batch[i].Command.Token)
		}
	}

	for _, sw := range e.sinks {
		for _, tok := range tokens {
			tok.Clone()
		}
		select {
		case sw.ch <- sink.Batch(batch):
			e.metrics.SinkQueueDepth.WithLabelValues(sw.name).Set(float64(len(sw.ch)))
		default:
			for _, tok := range tokens {
				tok.Release()
			}
			e.metrics.SinkBatchDropped.WithLabelValues(sw.name).Inc()
			e.diag.Warn("sink queue full, dropping batch for " + sw.name)
		}
	}

	for _, tok := range tokens {
		tok.Release()
	}
}

// sinkLoop is the C6/C7 worker: one per configured sink. It drains its
// queue, hands each batch to the sink's DoLogs, and — for any flush
// token riding along in that batch — calls the sink's Flush before
// releasing the token, so a waiter never observes completion before
// the sink's own buffers are durable.
//
// A panic recovered from the sink stops only this sink: the worker is
// marked stopped and never calls the sink again, but it keeps reading
// its queue until Exit, discarding every later batch and releasing any
// flush token that batch carries, so a Flush is not held up by a sink
// that has already proven unsound.
func (e *Engine) sinkLoop(sw *sinkWorker) {
	defer e.wg.Done()
	sw.status.setRunning()

	panicked := false
	for batch := range sw.ch {
		if panicked {
			for i := range batch {
				if batch[i].IsFlush() && batch[i].Command.Token != nil {
					batch[i].Command.Token.Release()
				}
			}
			continue
		}
		if e.processSinkBatch(sw, batch) {
			panicked = true
			sw.status.setStopped()
		}
	}

	if closer, ok := sw.sink.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			sw.diag.Error(err, "sink close failed")
		}
	}
	sw.status.setStopped()
}

func (e *Engine) processSinkBatch(sw *sinkWorker, batch sink.Batch) (panicked bool) {
	defer func() {
		if rec := recover(); rec != nil {
			panicked = true
			sw.diag.Error(fmt.Errorf("%v", rec), "sink worker panicked, stopping sink")
			for i := range batch {
				if batch[i].IsFlush() && batch[i].Command.Token != nil {
					batch[i].Command.Token.Release()
				}
			}
		}
	}()

	for i := range batch {
		if batch[i].IsExit() {
			sw.status.setDraining()
			break
		}
	}

	if err := sw.sink.DoLogs(context.Background(), batch); err != nil {
		e.metrics.SinkErrors.WithLabelValues(sw.name, "do_logs").Inc()
		sw.diag.Error(err, "DoLogs failed")
	}

	for i := range batch {
		if !batch[i].IsFlush() || batch[i].Command.Token == nil {
			continue
		}
		if err := sw.sink.Flush(context.Background()); err != nil {
			e.metrics.SinkErrors.WithLabelValues(sw.name, "flush").Inc()
			sw.diag.Error(err, "Flush failed")
		}
		batch[i].Command.Token.Release()
	}
	return false
}
