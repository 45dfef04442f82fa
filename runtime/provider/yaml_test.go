package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/logflow/apis/level"
)

func TestYAMLFileSnapshotDecodesSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logflow.yaml")
	doc := "minLevel: warn\nsinks: [\"file\"]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := NewYAMLFile(path, 10)
	spec, version, err := p.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if version == "" {
		t.Fatal("expected non-empty version")
	}
	if spec.MinLevel == nil || *spec.MinLevel != level.Warn {
		t.Fatalf("MinLevel = %v, want Warn", spec.MinLevel)
	}
	if len(spec.Sinks) != 1 || spec.Sinks[0] != "file" {
		t.Fatalf("Sinks = %v", spec.Sinks)
	}
}

func TestYAMLFileSnapshotMissingFile(t *testing.T) {
	p := NewYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"), 10)
	if _, _, err := p.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultsSnapshot(t *testing.T) {
	spec, _, err := Defaults{}.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if spec.MinLevel == nil || *spec.MinLevel != level.Info {
		t.Fatalf("MinLevel = %v, want Info", spec.MinLevel)
	}
	if len(spec.Sinks) != 1 || spec.Sinks[0] != "stdout" {
		t.Fatalf("Sinks = %v", spec.Sinks)
	}
}
