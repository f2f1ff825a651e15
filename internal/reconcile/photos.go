package reconcile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SavePhoto persists photo bytes under the canonical filename in dir,
// without ever silently destroying a prior photo that differs:
//
//  1. No file at the canonical path: write directly, no backup.
//  2. Existing file with identical bytes: keep it, discard the new copy.
//  3. Existing file with different bytes: move it to the lowest unused
//     numbered backup path (name.old1.jpg, name.old2.jpg, ...) and promote
//     the new photo to the canonical path.
//
// The returned backup path is empty unless case 3 occurred; the caller
// decides whether to warn, prompt, or ignore.
func SavePhoto(dir, filename string, data []byte) (string, error) {
	path := filepath.Join(dir, filename)

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("write photo: %w", err)
		}
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing photo: %w", err)
	}

	if bytes.Equal(existing, data) {
		return "", nil
	}

	// Write to a sibling path first so the canonical name is never left
	// holding a partial file.
	tmp := trimJPG(path) + ".new.jpg"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	backup, err := nextBackupPath(path)
	if err != nil {
		return "", err
	}
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("back up photo: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("promote new photo: %w", err)
	}
	return backup, nil
}

// nextBackupPath picks the lowest unused numbered backup path for a photo.
func nextBackupPath(path string) (string, error) {
	root := trimJPG(path)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s.old%d.jpg", root, n)
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe backup path: %w", err)
		}
	}
}

func trimJPG(path string) string {
	return strings.TrimSuffix(path, ".jpg")
}
