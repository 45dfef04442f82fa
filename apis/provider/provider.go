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

package provider

import "context"

// Provider supplies logflow configuration with a fixed priority.
// Higher priority overrides lower on conflicts. Dynamic reconfiguration
// after Init is a non-goal, so Provider has no Watch/Stream method: a
// caller reads Snapshot exactly once, at startup.
type Provider interface {
	// Name returns a stable identifier (e.g., "defaults", "file:/etc/logflow.yaml").
	Name() string

	// Priority defines override order; higher value wins on conflicts.
	Priority() int

	// Snapshot returns the current Specification and an opaque Version
	// (etag/revision). Nil Specification means "no data".
	Snapshot(ctx context.Context) (*Specification, string /*version*/, error)
}
