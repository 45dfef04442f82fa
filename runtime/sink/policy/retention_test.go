package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
}

func TestAllKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "temp.log", time.Now())
	touch(t, dir, "temp2026-01-01T00-00-00.000000.log", time.Now())

	scanned, err := All{}.DoKeep(dir, "temp.log")
	if err != nil || scanned != 1 {
		t.Fatalf("DoKeep = (%d, %v), want (1, nil)", scanned, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp2026-01-01T00-00-00.000000.log")); err != nil {
		t.Fatalf("rotated file should survive: %v", err)
	}
}

func TestKeepNum(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	touch(t, dir, "temp.log", time.Now())
	touch(t, dir, "temp_a.log", base)
	touch(t, dir, "temp_b.log", base.Add(10*time.Minute))
	touch(t, dir, "temp_c.log", base.Add(20*time.Minute))

	scanned, err := KeepNum{Num: 1}.DoKeep(dir, "temp.log")
	if err != nil {
		t.Fatalf("DoKeep: %v", err)
	}
	if scanned != 3 {
		t.Fatalf("scanned = %d, want 3", scanned)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp_c.log")); err != nil {
		t.Fatalf("newest rotated file should survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp.log")); err != nil {
		t.Fatalf("active file must never be pruned: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp_a.log")); !os.IsNotExist(err) {
		t.Fatalf("oldest rotated file should have been pruned, err = %v", err)
	}
}

func TestKeepTime(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "temp.log", now)
	touch(t, dir, "temp_old.log", now.Add(-2*time.Hour))
	touch(t, dir, "temp_new.log", now.Add(-time.Minute))

	p := KeepTime{Age: time.Hour, Now: func() time.Time { return now }}
	scanned, err := p.DoKeep(dir, "temp.log")
	if err != nil {
		t.Fatalf("DoKeep: %v", err)
	}
	if scanned != 2 {
		t.Fatalf("scanned = %d, want 2", scanned)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp_new.log")); err != nil {
		t.Fatalf("recent rotated file should survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp_old.log")); !os.IsNotExist(err) {
		t.Fatalf("old rotated file should have been pruned, err = %v", err)
	}
}
