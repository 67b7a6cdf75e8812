package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oxolabs/oxo-console/internal/entity"
)

type fileSnapshotRepository struct {
	path string
}

// NewFileSnapshotRepository - keeps the snapshot as the entire contents of
// the file at path.
func NewFileSnapshotRepository(path string) SnapshotRepository {
	return &fileSnapshotRepository{path: path}
}

func (that *fileSnapshotRepository) Store(_ context.Context, snapshot entity.Snapshot) error {
	if err := os.WriteFile(that.path, []byte(snapshot), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}

func (that *fileSnapshotRepository) Load(_ context.Context) (entity.Snapshot, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrSnapshotNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to read snapshot file: %w", err)
	}

	return entity.Snapshot(data), nil
}
