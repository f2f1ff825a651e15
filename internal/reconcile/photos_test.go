package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photoName = "UCLA_Student_123456789.jpg"

func readDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSavePhotoNewFile(t *testing.T) {
	dir := t.TempDir()

	backup, err := SavePhoto(dir, photoName, []byte("photo-a"))
	require.NoError(t, err)
	assert.Empty(t, backup)

	data, err := os.ReadFile(filepath.Join(dir, photoName))
	require.NoError(t, err)
	assert.Equal(t, []byte("photo-a"), data)
	assert.Equal(t, []string{photoName}, readDir(t, dir))
}

func TestSavePhotoIdenticalIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := SavePhoto(dir, photoName, []byte("photo-a"))
	require.NoError(t, err)

	backup, err := SavePhoto(dir, photoName, []byte("photo-a"))
	require.NoError(t, err)
	assert.Empty(t, backup)
	assert.Equal(t, []string{photoName}, readDir(t, dir))
}

func TestSavePhotoDifferentProducesBackup(t *testing.T) {
	dir := t.TempDir()

	_, err := SavePhoto(dir, photoName, []byte("photo-a"))
	require.NoError(t, err)

	backup, err := SavePhoto(dir, photoName, []byte("photo-b"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "UCLA_Student_123456789.old1.jpg"), backup)

	// Canonical path holds the new bytes, backup holds the old ones.
	data, err := os.ReadFile(filepath.Join(dir, photoName))
	require.NoError(t, err)
	assert.Equal(t, []byte("photo-b"), data)

	old, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, []byte("photo-a"), old)

	assert.ElementsMatch(t,
		[]string{photoName, "UCLA_Student_123456789.old1.jpg"},
		readDir(t, dir))
}

func TestSavePhotoBackupNumberingSkipsUsedSlots(t *testing.T) {
	dir := t.TempDir()

	_, err := SavePhoto(dir, photoName, []byte("photo-a"))
	require.NoError(t, err)
	_, err = SavePhoto(dir, photoName, []byte("photo-b"))
	require.NoError(t, err)

	backup, err := SavePhoto(dir, photoName, []byte("photo-c"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "UCLA_Student_123456789.old2.jpg"), backup)
}
