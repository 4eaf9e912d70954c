package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultFileMode = 0o644

// WriteFileAtomic writes content to path through a temporary file in the
// same directory followed by a rename, so a crash mid-write leaves either
// the old file or the new file, never a truncated one.
func WriteFileAtomic(path, content string, perm os.FileMode) error {
	if perm == 0 {
		perm = defaultFileMode
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".modernize-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.WriteString(content); writeErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file %q: %w", tmpName, writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file %q: %w", tmpName, closeErr)
	}
	if chmodErr := os.Chmod(tmpName, perm); chmodErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file %q: %w", tmpName, chmodErr)
	}

	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename %q to %q: %w", tmpName, path, renameErr)
	}
	return nil
}

// FileMode returns the mode of an existing file, or the default mode when
// the file cannot be inspected.
func FileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}
