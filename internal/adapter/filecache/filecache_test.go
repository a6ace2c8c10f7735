package filecache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileReturnsContent(t *testing.T) {
	cache, err := New(1 << 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(cache.Close)

	path := filepath.Join(t.TempDir(), "main.tf")
	if err := os.WriteFile(path, []byte(`resource "aws_vpc" "main" {}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := cache.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `resource "aws_vpc" "main" {}` {
		t.Errorf("ReadFile = %q", data)
	}
}

func TestReadFileSurvivesDeletion(t *testing.T) {
	cache, err := New(1 << 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(cache.Close)

	path := filepath.Join(t.TempDir(), "outputs.tf")
	if err := os.WriteFile(path, []byte("output \"x\" {}\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	first, err := cache.ReadFile(path)
	if err != nil {
		t.Fatalf("first ReadFile: %v", err)
	}
	cache.c.Wait()

	// A cached entry serves reads even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := cache.ReadFile(path)
	if err != nil {
		t.Fatalf("second ReadFile: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("cached read %q differs from original %q", second, first)
	}
}

func TestReadFileMissing(t *testing.T) {
	cache, err := New(1 << 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(cache.Close)

	if _, err := cache.ReadFile(filepath.Join(t.TempDir(), "nope.tf")); err == nil {
		t.Error("expected error for missing file")
	}
}
