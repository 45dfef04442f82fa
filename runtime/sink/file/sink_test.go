package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/apis/sink"
	policyimpl "dirpx.dev/logflow/runtime/sink/policy"
)

func emitRecord(formatted string) record.Record {
	r := record.NewEmit(time.Now(), level.Info, "t", "a", "m", "f.go", nil)
	r.Formatted = formatted
	return r
}

func TestDoLogsAppendsAndSync(t *testing.T) {
	dir := t.TempDir()
	s, err := New("test", Options{Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	batch := sink.Batch{emitRecord("line one\n"), emitRecord("line two\n")}
	if err := s.DoLogs(context.Background(), batch); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "temp.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "line one\nline two\n" {
		t.Fatalf("content = %q", data)
	}
}

func TestRotationRenamesAndReopens(t *testing.T) {
	dir := t.TempDir()
	s, err := New("test", Options{Dir: dir, Rolling: policyimpl.BySize{MaxBytes: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.DoLogs(context.Background(), sink.Batch{emitRecord("x")}); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected active + 1 rotated file, got %d entries", len(entries))
	}

	if _, err := os.Stat(filepath.Join(dir, "temp.log")); err != nil {
		t.Fatalf("active file must exist after rotation: %v", err)
	}
}

func TestSkipsNonEmitRecords(t *testing.T) {
	dir := t.TempDir()
	s, err := New("test", Options{Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	exitRec := record.NewExit(time.Now())
	if err := s.DoLogs(context.Background(), sink.Batch{exitRec}); err != nil {
		t.Fatalf("DoLogs: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "temp.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty file, got %q", data)
	}
}
