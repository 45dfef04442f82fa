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

// Package provider defines configuration providers for logflow.
//
// A provider loads a partial Specification once and declares a
// Priority. Multiple providers can be combined; higher-priority
// providers override lower ones during merge. Dynamic reconfiguration
// after Init is out of scope: there is no Watch, only Snapshot.
//
// This package only defines contracts and small merge utilities.
// The concrete YAML-backed implementation lives in runtime/provider.
//
// Priority convention (recommendation):
//
//	0  - defaults/builtin
//	10 - file (yaml)
//	40 - runtime/CLI overrides
//
// Merge semantics (see specification.go):
//   - MinLevel: last non-nil wins.
//   - Labels: merged key by key, override wins on conflicts.
//   - Pipeline: replaced as a whole (it has its own schema).
//   - Sinks: replaced as a whole (binding happens in runtime against registry).
package provider
