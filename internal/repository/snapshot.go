package repository

import (
	"context"
	"errors"

	"github.com/oxolabs/oxo-console/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository - durable storage for the single board save slot.
// Store overwrites whatever was saved before; Load returns the most
// recently stored snapshot or ErrSnapshotNotFound when none exists.
type SnapshotRepository interface {
	Store(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}
