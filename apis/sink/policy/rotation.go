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

package policy

import (
	"os"
	"time"
)

// Rolling decides whether the active file should be rotated. It is
// evaluated once per batch, after the batch's bytes have been
// written, never per individual record.
type Rolling interface {
	// ShouldRotate reports whether the active file, opened at
	// createdAt and currently currentSize bytes, should be rotated
	// given the current time now.
	ShouldRotate(createdAt time.Time, currentSize int64, now time.Time) bool
}

// Retention decides which rotated files under dir survive a pruning
// pass. tempName is the active file's base name (e.g. "temp.log"),
// used to recognize which rotated siblings belong to this sink.
type Retention interface {
	// DoKeep prunes rotated files under dir, returning how many
	// rotated siblings it considered (not how many it removed) and
	// the first error encountered, if any.
	DoKeep(dir, tempName string) (int, error)
}

// Packer optionally compresses and/or renames a rotated file. f is
// still open for reading at the time of the call; path is its
// on-disk location. DoPack reports whether it consumed (and the
// caller should remove) the original file.
type Packer interface {
	DoPack(f *os.File, path string) (bool, error)
}
