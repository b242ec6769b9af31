package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicWriteFile persists data to path so that a concurrent reader observes
// either the previous content in full or the new content in full, never a
// partial or zero-length file.
//
// The payload is written to a fresh temporary file in the same directory as
// the target (same filesystem, so the final step is a rename rather than a
// copy) and then renamed over the target path. The parent directory is
// created if absent. On any failure the temporary file is removed and the
// target is left untouched; I/O errors propagate to the caller wrapped but
// uninterpreted.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	// After a successful rename the temp file no longer exists and the
	// removal is a no-op; on every failure path it cleans up the leftover.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
