package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("EnsureDir() did not create %s: %v", dir, err)
	}

	// Idempotent on existing directories.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestEnsureDirNoop(t *testing.T) {
	if err := EnsureDir(""); err != nil {
		t.Errorf("EnsureDir(\"\") error = %v", err)
	}
	if err := EnsureDir("."); err != nil {
		t.Errorf("EnsureDir(\".\") error = %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(path) {
		t.Errorf("Exists(%q) = false, want true", path)
	}
	if Exists(filepath.Join(dir, "absent")) {
		t.Error("Exists(absent) = true, want false")
	}
}
