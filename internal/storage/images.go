package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalImageStore writes dish images under a local uploads directory and
// returns the public path they are served from.
type LocalImageStore struct {
	Dir string
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{Dir: dir}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (s *LocalImageStore) Upload(name string, data []byte, contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	filename := name + ext
	if err := os.WriteFile(filepath.Join(s.Dir, filename), data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
