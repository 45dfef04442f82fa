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

// Package policy implements concrete apis/sink/policy.Rolling and
// Retention strategies for the rolling file sink.
package policy

import "time"

// BySize rotates once the active file reaches MaxBytes.
type BySize struct {
	MaxBytes int64
}

func (p BySize) ShouldRotate(createdAt time.Time, currentSize int64, now time.Time) bool {
	return currentSize >= p.MaxBytes
}

// ByDuration rotates once the active file has been open for at least
// Interval.
type ByDuration struct {
	Interval time.Duration
}

func (p ByDuration) ShouldRotate(createdAt time.Time, currentSize int64, now time.Time) bool {
	return now.Sub(createdAt) >= p.Interval
}

// BySizeOrDuration rotates when either BySize or ByDuration would.
type BySizeOrDuration struct {
	MaxBytes int64
	Interval time.Duration
}

func (p BySizeOrDuration) ShouldRotate(createdAt time.Time, currentSize int64, now time.Time) bool {
	return currentSize >= p.MaxBytes || now.Sub(createdAt) >= p.Interval
}
