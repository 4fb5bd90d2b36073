// Package atomicfile writes files via temp file + rename so a target is
// never left in a partially-written state.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer stages content in a temporary file in the target's directory and
// replaces the target on Commit.
type Writer struct {
	path    string
	tmpPath string
	file    *os.File
}

// NewWriter creates a writer for one atomic file update. The temporary file
// lives next to the target so the final rename stays on one filesystem.
func NewWriter(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".ytscribe-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &Writer{
		path:    path,
		tmpPath: tmpFile.Name(),
		file:    tmpFile,
	}, nil
}

// Write writes data to the temporary file.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.file.Write(p)
}

// Commit atomically replaces the target file with the temporary file.
// The file is synced to disk before renaming to ensure durability.
func (w *Writer) Commit() error {
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath) // Best effort cleanup
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Abort discards the temporary file without committing.
func (w *Writer) Abort() error {
	w.file.Close()
	return os.Remove(w.tmpPath)
}

// WriteFile atomically writes data to path with the given permissions,
// replacing any existing file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		w.Abort()
		return fmt.Errorf("write: %w", err)
	}

	if err := os.Chmod(w.tmpPath, perm); err != nil {
		w.Abort()
		return fmt.Errorf("chmod: %w", err)
	}

	return w.Commit()
}
