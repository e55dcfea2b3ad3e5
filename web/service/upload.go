package service

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsafeFileName = errors.New("file name is not usable as a storage key")

// UploadService stores order attachments on disk under sanitized names.
// Two uploads sanitizing to the same name overwrite each other; the
// store keeps exactly one file per name.
type UploadService struct {
	Dir string
}

// SanitizeFileName reduces a client-supplied file name to a safe storage
// key: the base name with anything outside [a-zA-Z0-9._-] replaced by
// '_'. Returns an error when nothing usable remains.
func SanitizeFileName(name string) (string, error) {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "", ErrUnsafeFileName
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	clean := b.String()
	if strings.Trim(clean, "._-") == "" {
		return "", ErrUnsafeFileName
	}
	return clean, nil
}

// Save writes the uploaded file under its sanitized name and returns the
// stored name.
func (s *UploadService) Save(fileHeader *multipart.FileHeader) (string, error) {
	name, err := SanitizeFileName(fileHeader.Filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a stored name back to its on-disk path, re-sanitizing so
// a crafted name can never escape the upload directory.
func (s *UploadService) Path(name string) (string, error) {
	clean, err := SanitizeFileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, clean), nil
}
