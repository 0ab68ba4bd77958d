// Package fileutil provides small filesystem helpers shared by the
// pipeline components.
package fileutil

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents with default permissions.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// Exists reports whether path refers to an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
