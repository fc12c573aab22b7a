// =============================================================================
// XML to RPG Cards Converter - File Utilities
// =============================================================================
//
// This module provides the small file helpers shared by the commands:
//   - Input checks with clear messages for missing files and directories
//   - All-or-nothing output writes (temp file + rename)
//
// WRITE STRATEGY:
//   The output is written to a uniquely named temp file next to the target
//   and renamed over it once fully written and synced. A failed run never
//   leaves a truncated output file behind.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotAFile is returned when an input path names a directory.
var ErrNotAFile = errors.New("not a regular file")

// =============================================================================
// INPUT CHECKS
// =============================================================================

// RequireFile checks that path exists and is a regular file.
//
// PARAMETERS:
//   - path: The path to check.
//   - what: A short description used in the error, e.g. "XML file".
//
// RETURNS:
//   - nil if the path is a readable regular file.
//   - An error wrapping os.ErrNotExist or ErrNotAFile otherwise.
func RequireFile(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist: %w", what, path, os.ErrNotExist)
		}
		return fmt.Errorf("cannot access %s %q: %w", what, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q: %w", what, path, ErrNotAFile)
	}
	return nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// WriteFileAtomic writes data to path through a temp file in the same
// directory, so readers see either the old content or the complete new one.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	// Remove the temp file on any failure below.
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	committed = true

	return nil
}
