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

// Package pipeline declares the high-level contracts for building and
// describing a logflow logging pipeline.
//
// A pipeline is the logical sequence a record goes through: a filter
// chain, a single formatter, and a fan-out to configured sinks. This
// package's Specification is the *declarative* side of that process —
// "which filters to run, in what order, and which sinks to fan out
// to" — and does not execute anything itself. Config is the *resolved*
// side: a Builder (runtime/pipeline) turns a Specification into a
// Config by consulting the plugin and sink registries once, at Init.
//
// The flow a Specification describes:
//
//  1. Run the pre-ingress filter chain (Specification.Pre).
//  2. Format the record exactly once (runtime/format, off the producer
//     goroutine).
//  3. Deliver the formatted batch to every configured sink
//     (Specification.Sinks). There is no post-sink stage: once a batch
//     reaches a sink it is that sink's concern alone.
//
// The pipeline package intentionally does *not* import the plugin
// package to avoid cyclic dependencies. It only defines declarative
// specs; the executable plugin contract lives in the sibling package
// "dirpx.dev/logflow/apis/pipeline/plugin".
package pipeline
