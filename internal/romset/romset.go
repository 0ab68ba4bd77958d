package romset

import (
	"fmt"
	"strings"
)

// ArchiveFormat describes how ROMs are packaged on disk.
type ArchiveFormat string

const (
	// ArchiveNone means ROMs are stored as loose files.
	ArchiveNone ArchiveFormat = "none"
	// ArchiveZip means each set is a .zip archive.
	ArchiveZip ArchiveFormat = "zip"
	// Archive7z means each set is a .7z archive.
	Archive7z ArchiveFormat = "7z"
)

// ParseArchiveFormat normalizes a user-supplied archive format value.
// Leading dots are accepted ("zip" and ".zip" are equivalent).
func ParseArchiveFormat(value string) (ArchiveFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, ".")
	switch normalized {
	case "none", "":
		return ArchiveNone, nil
	case "zip":
		return ArchiveZip, nil
	case "7z":
		return Archive7z, nil
	default:
		return "", fmt.Errorf("unsupported archive format %q (expected none, zip, or 7z)", value)
	}
}

// Extension returns the file extension for the archive format, including the
// leading dot, or "" for loose files.
func (f ArchiveFormat) Extension() string {
	switch f {
	case ArchiveZip:
		return ".zip"
	case Archive7z:
		return ".7z"
	default:
		return ""
	}
}

// StorageMode describes the ROM set storage convention.
type StorageMode string

const (
	// ModeNonMerged keeps every title fully self-contained.
	ModeNonMerged StorageMode = "non-merged"
	// ModeSplit keeps clones separate but shared files with the parent.
	ModeSplit StorageMode = "split"
	// ModeMerged collapses parent and clone files into one archive.
	ModeMerged StorageMode = "merged"
)

// ParseStorageMode normalizes a user-supplied storage mode value.
func ParseStorageMode(value string) (StorageMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "non-merged", "nonmerged":
		return ModeNonMerged, nil
	case "split":
		return ModeSplit, nil
	case "merged", "":
		return ModeMerged, nil
	default:
		return "", fmt.Errorf("unsupported storage mode %q (expected non-merged, split, or merged)", value)
	}
}
