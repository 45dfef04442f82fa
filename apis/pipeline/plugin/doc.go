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

// Package plugin defines the executable, runtime-facing extension point
// for logflow's pre-ingress filter chain.
//
// While apis/pipeline.Specification describes *what* should run (via
// Specification.Pre), this package describes *how* a single processing
// unit looks at runtime.
//
// A plugin is a specialized pipeline stage that:
//
//  1. Has a stable, human-readable name (used in configs, logs, metrics).
//  2. Can be enabled or disabled without being removed from the pipeline.
//  3. Processes a record and returns a decision whether to continue or
//     to drop it.
//
// Only the Filter role is wired in this module: plugins run
// synchronously on the producer goroutine, before a record is ever
// considered for the ingress channel (C3 in the pipeline design).
//
// This package depends only on the shared record type and on the
// minimal stage decision contract; it does not pull in any concrete
// logging backend, formatters, or sinks.
package plugin
