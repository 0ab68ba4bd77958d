package playlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"dat2lpl/internal/fileutil"
)

const lockFileName = ".dat2lpl.lock"

// WriteFiles writes each output file as indented JSON, creating the output
// directory when missing. An advisory lock on the directory guards against
// two runs interleaving writes to the same playlist set.
//
// Group files are written independently: a failure part way through leaves
// the files already written on disk.
func WriteFiles(files []OutputFile) error {
	if len(files) == 0 {
		return nil
	}

	dir := filepath.Dir(files[0].Name)
	if err := fileutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output directory %q: %w", dir, err)
	}
	if !locked {
		return fmt.Errorf("output directory %q is locked by another run", dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	for _, file := range files {
		if err := writeFile(file); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(file OutputFile) error {
	data, err := json.MarshalIndent(file.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("encode playlist %q: %w", file.Name, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(file.Name, data, 0o644); err != nil {
		return fmt.Errorf("write playlist %q: %w", file.Name, err)
	}
	return nil
}
