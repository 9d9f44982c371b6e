// Package localfs stores uploaded images in a local directory served as
// static files.
package localfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"inventory-app/internal/storage"

	"github.com/google/uuid"
)

// ImageStore writes images into dir and hands out public paths under
// publicPath (e.g. "/images/<name>").
type ImageStore struct {
	dir        string
	publicPath string
}

// NewImageStore creates the backing directory if needed.
func NewImageStore(dir, publicPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &ImageStore{dir: dir, publicPath: publicPath}, nil
}

// Compile-time check to ensure ImageStore implements storage.ImageStore
var _ storage.ImageStore = (*ImageStore)(nil)

// Save writes the image under a generated name and returns its public path.
func (s *ImageStore) Save(ext string, r io.Reader) (string, error) {
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Remove deletes the file behind a public path. A path that no longer exists
// is treated as already removed.
func (s *ImageStore) Remove(publicPath string) error {
	// Only the basename is trusted; the public prefix is ours.
	name := path.Base(publicPath)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid image path %q", publicPath)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove image %s: %w", name, err)
	}
	return nil
}
