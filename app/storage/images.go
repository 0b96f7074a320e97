package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Images writes normalized item images to the configured directory under
// generated names, so file names never come from clients.
type Images struct {
	dir string
}

func NewImages(dir string) (*Images, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Images{dir: dir}, nil
}

// Save stores data and returns the generated file name.
func (s *Images) Save(data []byte) (string, error) {
	name := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return name, nil
}

// Path resolves a stored file name, rejecting anything that could escape
// the image directory.
func (s *Images) Path(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid image name %q", name)
	}
	p := filepath.Join(s.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}
