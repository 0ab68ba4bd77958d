package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "-p", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected output to mention %s, got %q", target, stdout)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	if !strings.Contains(string(data), "rom_root") {
		t.Fatalf("sample config missing rom_root: %s", data)
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	if _, _, err := runCLI(t, "config", "init", "-p", target); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", "-p", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, _, err := runCLI(t, "config", "init", "-p", target, "--overwrite"); err != nil {
		t.Fatalf("init with overwrite: %v", err)
	}
}
