package plain

import (
	"strings"
	"testing"
	"time"

	"dirpx.dev/logflow/apis/command"
	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

func TestFormat_OmitsLineBelowThreshold(t *testing.T) {
	f := &Formatter{DisplayLineLevel: level.Warn}
	line := uint32(42)
	r := record.Record{
		Command:    command.NewEmit(),
		Level:      level.Info,
		Target:     "svc",
		Args:       "hello",
		ModulePath: "pkg/mod",
		File:       "main.go",
		Line:       &line,
		Time:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	out, ok := f.Format(&r)
	if !ok {
		t.Fatal("expected ok=true for an Emit record")
	}
	if strings.Contains(out, "main.go") {
		t.Fatalf("expected no file:line for Info below Warn threshold, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
}

func TestFormat_IncludesLineAtOrAboveThreshold(t *testing.T) {
	f := &Formatter{DisplayLineLevel: level.Warn}
	line := uint32(42)
	r := record.Record{
		Command:    command.NewEmit(),
		Level:      level.Error,
		ModulePath: "pkg/mod",
		Args:       "boom",
		File:       "main.go",
		Line:       &line,
		Time:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	out, ok := f.Format(&r)
	if !ok {
		t.Fatal("expected ok=true for an Emit record")
	}
	if !strings.Contains(out, "main.go:42") {
		t.Fatalf("expected file:line for Error at/above Warn threshold, got %q", out)
	}
}

func TestFormat_NonEmitProducesNoOutput(t *testing.T) {
	f := New()
	r := record.NewExit(time.Now())
	if _, ok := f.Format(&r); ok {
		t.Fatal("expected ok=false for an Exit record")
	}
	r = record.NewFlush(time.Now(), command.NewFlush(nil))
	if _, ok := f.Format(&r); ok {
		t.Fatal("expected ok=false for a Flush record")
	}
}
