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

// Package fields contains canonical label keys used across logflow.
//
// There is no per-record structured-field logging in this module;
// these constants instead name the static attribution labels carried
// on apis/provider.Specification.Labels (service, version, region,
// ...), so every pipeline and sink agrees on the same vocabulary for
// metrics and diagnostic attribution.
//
// All names are lowercase and underscore-separated to keep them simple,
// predictable and friendly to JSON-based tooling and Prometheus labels.
package fields
