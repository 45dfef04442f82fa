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

// Package barrier implements a one-shot, reference-counted completion
// barrier used to coordinate a pipeline flush across a number of stages
// that is not known until the token has already started fanning out.
package barrier

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Token is a reference-counted barrier. It starts with one reference
// held by its creator. Every stage that will observe the flush clones
// the token before handing it downstream and releases its own clone
// once it has finished acting on it. Wait blocks until every clone,
// including the creator's, has been released.
//
// A sync.WaitGroup cannot play this role directly: Add must never race
// a concurrent Wait, but here the number of clones is only known as the
// token fans out across goroutines that may already be inside Wait on
// the creator's side. Token counts down from an initial reference
// instead of counting up, so cloning after Wait has started is safe.
type Token struct {
	// ID identifies this flush in diagnostic logs and metrics only; it
	// never rides along as a per-record field and has no bearing on
	// the barrier's counting logic.
	ID string

	n         int64
	done      chan struct{}
	closeOnce sync.Once
}

// New returns a Token with a single outstanding reference, held by the
// caller.
func New() *Token {
	return &Token{
		ID:   uuid.NewString(),
		n:    1,
		done: make(chan struct{}),
	}
}

// Clone adds one outstanding reference and returns the same token for
// convenience at the call site (t2 := t.Clone()).
func (t *Token) Clone() *Token {
	atomic.AddInt64(&t.n, 1)
	return t
}

// Release drops one outstanding reference. When the count reaches
// zero, done is closed exactly once and all waiters unblock.
func (t *Token) Release() {
	if atomic.AddInt64(&t.n, -1) == 0 {
		t.closeOnce.Do(func() { close(t.done) })
	}
}

// Wait blocks until every reference has been released, or ctx is done,
// whichever happens first.
func (t *Token) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
