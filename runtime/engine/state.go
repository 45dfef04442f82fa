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
	"sync/atomic"
	"time"

	"dirpx.dev/logflow/apis/health"
)

// workerPhase is a worker's position in the Running -> Draining ->
// Stopped lifecycle described for C5/C7.
type workerPhase int32

const (
	phaseRunning workerPhase = iota
	phaseDraining
	phaseStopped
)

// workerStatus tracks one engine worker's lifecycle and exposes it as
// an apis/health.Checker, the way the teacher exposes subsystem state
// through small purpose-built types rather than a generic one.
type workerStatus struct {
	name  string
	phase atomic.Int32
}

func newWorkerStatus(name string) *workerStatus {
	return &workerStatus{name: name}
}

func (w *workerStatus) setRunning()  { w.phase.Store(int32(phaseRunning)) }
func (w *workerStatus) setDraining() { w.phase.Store(int32(phaseDraining)) }
func (w *workerStatus) setStopped()  { w.phase.Store(int32(phaseStopped)) }

// Check implements health.Checker. A stopped worker is reported
// unhealthy: it is no longer accepting or delivering anything, which
// from an operator's point of view means the pipeline has lost that
// leg, whether or not the shutdown was intentional.
func (w *workerStatus) Check(ctx context.Context) (health.Result, error) {
	status := health.StatusHealthy
	switch workerPhase(w.phase.Load()) {
	case phaseDraining:
		status = health.StatusDegraded
	case phaseStopped:
		status = health.StatusUnhealthy
	}
	return health.Result{
		Name:       w.name,
		Status:     status,
		ObservedAt: time.Now(),
	}, nil
}

var _ health.Checker = (*workerStatus)(nil)
