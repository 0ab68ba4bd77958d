package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Paths.Output != "output.lpl" {
		t.Errorf("default output = %q, want output.lpl", cfg.Paths.Output)
	}
	if cfg.Romset.ArchiveFormat != "7z" || cfg.Romset.StorageMode != "merged" {
		t.Errorf("default romset = %+v", cfg.Romset)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
[paths]
rom_root = "/roms/snes"
output = "snes.lpl"

[romset]
archive_format = "zip"
storage_mode = "split"

[regions]
split = true
map_world = true
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists {
		t.Error("Load() exists = false, want true")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Paths.ROMRoot != "/roms/snes" {
		t.Errorf("rom_root = %q", cfg.Paths.ROMRoot)
	}
	if cfg.Romset.ArchiveFormat != "zip" || cfg.Romset.StorageMode != "split" {
		t.Errorf("romset = %+v", cfg.Romset)
	}
	if !cfg.Regions.Split || !cfg.Regions.MapWorld {
		t.Errorf("regions = %+v", cfg.Regions)
	}
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if exists {
		t.Error("Load() exists = true for missing file")
	}
	if cfg.Romset.StorageMode != "merged" {
		t.Errorf("storage mode = %q, want merged default", cfg.Romset.StorageMode)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := writeConfig(t, `
[romset]
archive_format = ".ZIP"
storage_mode = "  Merged "

[logging]
level = "WARN"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Romset.ArchiveFormat != ".zip" {
		t.Errorf("archive_format = %q, want .zip", cfg.Romset.ArchiveFormat)
	}
	if cfg.Romset.StorageMode != "merged" {
		t.Errorf("storage_mode = %q, want merged", cfg.Romset.StorageMode)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"bad archive format",
			"[romset]\narchive_format = \"rar\"",
			"archive_format",
		},
		{
			"bad storage mode",
			"[romset]\nstorage_mode = \"full\"",
			"storage_mode",
		},
		{
			"map without split",
			"[regions]\nmap_file = \"regions.json\"",
			"regions.map_file",
		},
		{
			"bad log format",
			"[logging]\nformat = \"xml\"",
			"logging.format",
		},
		{
			"bad log level",
			"[logging]\nlevel = \"trace\"",
			"logging.level",
		},
		{
			"non-positive timeout",
			"[validation]\ntimeout_seconds = 0",
			"timeout_seconds",
		},
		{
			"malformed toml",
			"[paths\nrom_root=",
			"parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample() error = %v", err)
	}

	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("Load(sample) error = %v", err)
	}
	if !exists {
		t.Error("sample config not found after CreateSample")
	}
	if cfg.Romset.ArchiveFormat != "7z" {
		t.Errorf("sample archive_format = %q, want 7z", cfg.Romset.ArchiveFormat)
	}
}
