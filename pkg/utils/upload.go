package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SaveUploadedFile writes a multipart file into dir under a unique name and
// returns the stored file name. The caller decides how the path is persisted.
func SaveUploadedFile(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	name := UniqueFileName(fh.Filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("write file %s: %w", dstPath, err)
	}

	return name, nil
}

// UniqueFileName builds "<base>-<unix>-<uuid><ext>" so concurrent uploads
// never collide.
func UniqueFileName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().Unix(), uuid.New().String()[:8], ext)
}

// RemoveUploadedFile deletes a stored file. Best-effort: a missing file or
// failed removal is reported but must never fail the request.
func RemoveUploadedFile(dir, name string) error {
	if name == "" {
		return nil
	}

	// Stored values may be "/uploads/..." paths or bare file names.
	name = filepath.Base(name)

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(path)
}
