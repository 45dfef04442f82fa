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
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Zip archives the rotated file to "<name minus .log>.zip", storing
// it under its base name, and reports true, so the caller removes the
// original.
type Zip struct{}

func (Zip) DoPack(f *os.File, path string) (bool, error) {
	dst := strings.TrimSuffix(path, ".log") + ".zip"
	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("packer: zip create %s: %w", dst, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	entry, err := zw.Create(filepath.Base(path))
	if err != nil {
		return false, fmt.Errorf("packer: zip entry for %s: %w", path, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("packer: zip seek %s: %w", path, err)
	}
	if _, err := io.Copy(entry, f); err != nil {
		return false, fmt.Errorf("packer: zip copy %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return false, fmt.Errorf("packer: zip finish %s: %w", dst, err)
	}
	return true, nil
}
