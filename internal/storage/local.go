// Package storage keeps uploaded attachment bytes.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore stores named byte streams and returns a retrievable URL
type FileStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// LocalStore writes files under a directory served at baseURL
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the directory if needed
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SanitizeFileName strips directories and characters unsafe in URLs
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '?' || r == '#' || r == '%' || r < 0x20:
			return -1
		case r == ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}

// Save writes the stream as "<uuid>_<name>" and returns its URL
func (s *LocalStore) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := uuid.NewString() + "_" + SanitizeFileName(fileName)
	f, err := os.OpenFile(filepath.Join(s.dir, stored), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return s.baseURL + "/" + stored, nil
}

// Delete removes the file behind a URL produced by Save. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, fileURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(fileURL, s.baseURL+"/") {
		return fmt.Errorf("file url %q is not managed by this store", fileURL)
	}

	name := path.Base(strings.TrimPrefix(fileURL, s.baseURL+"/"))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
