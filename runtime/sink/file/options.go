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

package file

import (
	"dirpx.dev/logflow/apis/sink/policy"
	"dirpx.dev/logflow/runtime/diag"
	"dirpx.dev/logflow/runtime/sink/packer"
	policyimpl "dirpx.dev/logflow/runtime/sink/policy"
)

// Options configures a rolling file Sink.
type Options struct {
	// Dir is the directory the active file and its rotated siblings
	// live in. It is created with 0o755 if missing.
	Dir string

	// TempName is the active file's base name. Defaults to "temp.log".
	// On rotation it is renamed to TempName with ".log" replaced by a
	// timestamp plus ".log", e.g.
	// "temp2026-07-29T10-00-00.000000.log".
	TempName string

	// Rolling decides when to rotate. Defaults to policy.BySize with a
	// 64MB threshold.
	Rolling policy.Rolling

	// Retention decides which rotated siblings survive a pruning pass,
	// run once per rotation. Defaults to policy.All (keep everything).
	Retention policy.Retention

	// Packer optionally archives a rotated file. Defaults to
	// packer.Identity (leave the rotated ".log" file as is).
	Packer policy.Packer

	// Diag receives pack/retention failures, which DoLogs itself never
	// surfaces (the background pack worker runs off the write path).
	// Nil defaults to a no-op logger.
	Diag *diag.Logger
}

func (o Options) withDefaults() Options {
	if o.TempName == "" {
		o.TempName = "temp.log"
	}
	if o.Rolling == nil {
		o.Rolling = policyimpl.BySize{MaxBytes: 64 << 20}
	}
	if o.Retention == nil {
		o.Retention = policyimpl.All{}
	}
	if o.Packer == nil {
		o.Packer = packer.Identity{}
	}
	if o.Diag == nil {
		nop := diag.Nop()
		o.Diag = &nop
	}
	return o
}
