package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueFileName(t *testing.T) {
	first := UniqueFileName("beach.jpg")
	second := UniqueFileName("beach.jpg")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "beach-"))
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

func TestUniqueFileNameNoExtension(t *testing.T) {
	name := UniqueFileName("notes")
	assert.True(t, strings.HasPrefix(name, "notes-"))
	assert.False(t, strings.Contains(name, "."))
}

func TestRemoveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, RemoveUploadedFile(dir, "photo.jpg"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing files and empty names are not errors.
	assert.NoError(t, RemoveUploadedFile(dir, "photo.jpg"))
	assert.NoError(t, RemoveUploadedFile(dir, ""))
}

func TestRemoveUploadedFileStripsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	// Stored values may carry the public /uploads prefix.
	require.NoError(t, RemoveUploadedFile(dir, "/uploads/photo.jpg"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
