package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// SaveUpload writes a multipart upload into dir under a timestamped name and
// returns the stored path. The caller owns removal of the file.
func SaveUpload(dir string, file multipart.File, originalName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}

// RemoveUpload deletes a stored upload, tolerating a file already gone so the
// release stays single-shot on every exit path.
func RemoveUpload(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
