// Package atomicfile provides crash-safe file writing using temporary files
// and atomic renames. The config save path and the remote palette cache use
// it so a crash mid-write never leaves a truncated file behind.

package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write atomically writes data to path. It creates a temp file in the same
// directory as path, writes and syncs the data, applies perm with
// [os.Chmod], and renames the temp file over the target. The rename is the
// commit point; on any earlier failure the temp file is removed.
func Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()
	var committed bool
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}
