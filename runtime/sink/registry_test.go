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

package sink

import (
	"context"
	"path/filepath"
	"testing"

	asink "dirpx.dev/logflow/apis/sink"
)

func TestBuildStdoutAndMemory(t *testing.T) {
	s, err := Build(context.Background(), "stdout", "out", nil)
	if err != nil {
		t.Fatalf("build stdout: %v", err)
	}
	if s.Name() != "out" {
		t.Fatalf("Name() = %q, want %q", s.Name(), "out")
	}

	m, err := Build(context.Background(), "memory", "mem", nil)
	if err != nil {
		t.Fatalf("build memory: %v", err)
	}
	if m.Name() != "mem" {
		t.Fatalf("Name() = %q, want %q", m.Name(), "mem")
	}
}

func TestBuildFileUsesDiagAndOptions(t *testing.T) {
	dir := t.TempDir()
	s, err := Build(context.Background(), "file", "rolling", map[string]any{"dir": dir})
	if err != nil {
		t.Fatalf("build file: %v", err)
	}
	if s.Name() != "rolling" {
		t.Fatalf("Name() = %q, want %q", s.Name(), "rolling")
	}
	if err := s.DoLogs(context.Background(), nil); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}
}

func TestBuildGroupFansOutToMembers(t *testing.T) {
	dir := t.TempDir()
	g, err := Build(context.Background(), "group", "both", []GroupMember{
		{Name: "console", Kind: "stdout"},
		{Name: "file", Kind: "file", Options: map[string]any{"dir": filepath.Join(dir, "logs")}},
	})
	if err != nil {
		t.Fatalf("build group: %v", err)
	}

	grp, ok := g.(asink.Group)
	if !ok {
		t.Fatalf("group sink does not implement apis/sink.Group")
	}
	names := grp.List()
	if len(names) != 2 {
		t.Fatalf("expected 2 members, got %d: %v", len(names), names)
	}
}

func TestBuildUnknownKindFails(t *testing.T) {
	if _, err := Build(context.Background(), "nope", "x", nil); err == nil {
		t.Fatal("expected error for unregistered sink kind")
	}
}
