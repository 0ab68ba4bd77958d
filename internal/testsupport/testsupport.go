// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"dat2lpl/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ROMRoot = filepath.Join(base, "roms")
	cfg.Paths.Output = filepath.Join(base, "out", "output.lpl")
	return &cfg
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Catalog is a small well-formed DAT document used across tests: three
// games covering a region-tagged pair and an untagged title.
const Catalog = `<?xml version="1.0"?>
<datafile>
  <header>
    <description>Test System</description>
  </header>
  <game name="Alpha (USA)" id="1">
    <rom name="Alpha (USA).sfc" crc="aabbccdd"/>
  </game>
  <game name="Beta (Europe)" id="2">
    <rom name="Beta (Europe).sfc" crc="11223344"/>
  </game>
  <game name="Gamma" id="3">
    <rom name="Gamma.sfc" crc="55667788"/>
  </game>
</datafile>
`
