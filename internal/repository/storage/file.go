package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage holds the resolved path of the snapshot file.
type FileStorage struct {
	Path string
}

// NewFileStorage - resolves the directory that holds the snapshot file and
// makes sure it exists. An empty dir falls back to the user's home
// directory, then to the working directory.
func NewFileStorage(dir, name string) (*FileStorage, error) {
	if dir == "" {
		dir = defaultDir()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create snapshot directory: %w", err)
	}

	return &FileStorage{Path: filepath.Join(dir, name)}, nil
}

func defaultDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
