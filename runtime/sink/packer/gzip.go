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

package packer

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Gzip compresses the rotated file to "<name minus .log>.gz" and
// reports true, so the caller removes the original.
type Gzip struct {
	// Level is passed to gzip.NewWriterLevel. Zero means
	// gzip.DefaultCompression.
	Level int
}

func (g Gzip) DoPack(f *os.File, path string) (bool, error) {
	dst := strings.TrimSuffix(path, ".log") + ".gz"
	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("packer: gzip create %s: %w", dst, err)
	}
	defer out.Close()

	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	zw, err := gzip.NewWriterLevel(out, level)
	if err != nil {
		return false, fmt.Errorf("packer: gzip writer: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("packer: gzip seek %s: %w", path, err)
	}
	if _, err := io.Copy(zw, f); err != nil {
		return false, fmt.Errorf("packer: gzip copy %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return false, fmt.Errorf("packer: gzip finish %s: %w", dst, err)
	}
	return true, nil
}
