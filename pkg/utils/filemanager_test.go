package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.xml")
	require.NoError(t, os.WriteFile(path, []byte("<root/>"), 0o644))

	t.Run("regular file", func(t *testing.T) {
		assert.NoError(t, RequireFile(path, "XML file"))
	})

	t.Run("missing", func(t *testing.T) {
		err := RequireFile(filepath.Join(dir, "nope.xml"), "XML file")
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "XML file")
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("directory", func(t *testing.T) {
		err := RequireFile(dir, "filter file")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotAFile)
	})
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cards.json")

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
