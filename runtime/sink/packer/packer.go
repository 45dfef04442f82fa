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

// Package packer implements apis/sink/policy.Packer: what happens to a
// rotated-out log file once the rolling sink is done writing to it.
package packer

import (
	"os"
)

// Identity keeps the rotated file as plain, uncompressed ".log" text
// and never removes it. It is the default: do nothing, and not remove
// file.
type Identity struct{}

func (Identity) DoPack(f *os.File, path string) (bool, error) {
	return false, nil
}
