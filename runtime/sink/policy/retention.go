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
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// All never prunes: every rotated file survives forever.
type All struct{}

func (All) DoKeep(dir, tempName string) (int, error) {
	siblings, err := rotatedSiblings(dir, tempName)
	if err != nil {
		return 0, err
	}
	return len(siblings), nil
}

// rotatedSiblings lists every file under dir that is a rotated sibling
// of tempName (e.g. "temp.log" -> "temp2026-07-29T10-00-00.000000.log"
// or a packed "temp....gz"/".zip"/".lz4"), sorted oldest first by
// modification time. The still-active tempName itself is excluded.
func rotatedSiblings(dir, tempName string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	stem := strings.TrimSuffix(tempName, filepath.Ext(tempName))
	var out []os.DirEntry
	for _, e := range entries {
		if e.IsDir() || e.Name() == tempName {
			continue
		}
		if strings.HasPrefix(e.Name(), stem) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ii, _ := out[i].Info()
		jj, _ := out[j].Info()
		if ii == nil || jj == nil {
			return out[i].Name() < out[j].Name()
		}
		return ii.ModTime().Before(jj.ModTime())
	})
	return out, nil
}

// KeepNum keeps only the Num most recent rotated siblings, removing
// the rest. Num<=0 removes every rotated sibling.
type KeepNum struct {
	Num int
}

func (p KeepNum) DoKeep(dir, tempName string) (int, error) {
	siblings, err := rotatedSiblings(dir, tempName)
	if err != nil {
		return 0, err
	}
	keep := p.Num
	if keep < 0 {
		keep = 0
	}
	if len(siblings) <= keep {
		return len(siblings), nil
	}
	toRemove := siblings[:len(siblings)-keep]
	var firstErr error
	for _, e := range toRemove {
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return len(siblings), firstErr
}

// KeepTime removes rotated siblings whose modification time is older
// than Age relative to now.
type KeepTime struct {
	Age time.Duration
	Now func() time.Time
}

func (p KeepTime) DoKeep(dir, tempName string) (int, error) {
	siblings, err := rotatedSiblings(dir, tempName)
	if err != nil {
		return 0, err
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	cutoff := now().Add(-p.Age)

	var firstErr error
	for _, e := range siblings {
		info, err := e.Info()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return len(siblings), firstErr
}
