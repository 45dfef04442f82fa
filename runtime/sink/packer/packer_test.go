package packer

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func writeTempLog(t *testing.T, dir, content string) *os.File {
	t.Helper()
	path := filepath.Join(dir, "temp.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestIdentityDoesNothing(t *testing.T) {
	dir := t.TempDir()
	f := writeTempLog(t, dir, "hello")
	ok, err := Identity{}.DoPack(f, filepath.Join(dir, "temp.log"))
	if err != nil || ok {
		t.Fatalf("DoPack = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestGzipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temp.log")
	f := writeTempLog(t, dir, "hello gzip")
	ok, err := Gzip{}.DoPack(f, path)
	if err != nil || !ok {
		t.Fatalf("DoPack = (%v, %v), want (true, nil)", ok, err)
	}
	gz, err := os.Open(filepath.Join(dir, "temp.gz"))
	if err != nil {
		t.Fatalf("open packed file: %v", err)
	}
	defer gz.Close()
	r, err := gzip.NewReader(gz)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello gzip" {
		t.Fatalf("content = %q", got)
	}
}

func TestZipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temp.log")
	f := writeTempLog(t, dir, "hello zip")
	ok, err := Zip{}.DoPack(f, path)
	if err != nil || !ok {
		t.Fatalf("DoPack = (%v, %v), want (true, nil)", ok, err)
	}
	zr, err := zip.OpenReader(filepath.Join(dir, "temp.zip"))
	if err != nil {
		t.Fatalf("zip.OpenReader: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(zr.File))
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello zip" {
		t.Fatalf("content = %q", got)
	}
}

func TestLZ4RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temp.log")
	f := writeTempLog(t, dir, "hello lz4")
	ok, err := LZ4{}.DoPack(f, path)
	if err != nil || !ok {
		t.Fatalf("DoPack = (%v, %v), want (true, nil)", ok, err)
	}
	lz, err := os.Open(filepath.Join(dir, "temp.lz4"))
	if err != nil {
		t.Fatalf("open packed file: %v", err)
	}
	defer lz.Close()
	r := lz4.NewReader(lz)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello lz4" {
		t.Fatalf("content = %q", got)
	}
}
