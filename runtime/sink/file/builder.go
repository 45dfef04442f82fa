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
	"context"

	"dirpx.dev/logflow/apis/sink"
)

// Builder adapts New to the registry.Builder[sink.Sink, Options]
// shape so "file" can be registered in the runtime sink registry.
type Builder struct{}

func (Builder) Build(ctx context.Context, name string, spec Options) (sink.Sink, error) {
	return New(name, spec)
}
