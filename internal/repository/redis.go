package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oxolabs/oxo-console/internal/entity"
)

// snapshotKey is fixed because the game keeps exactly one save slot.
const snapshotKey = "oxo:snapshot"

type redisSnapshotRepository struct {
	client *redis.Client
}

// NewRedisSnapshotRepository - returns a snapshot repository backed by redis.
func NewRedisSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &redisSnapshotRepository{client: client}
}

func (that *redisSnapshotRepository) Store(ctx context.Context, snapshot entity.Snapshot) error {
	if err := that.client.Set(ctx, snapshotKey, string(snapshot), 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (that *redisSnapshotRepository) Load(ctx context.Context) (entity.Snapshot, error) {
	value, err := that.client.Get(ctx, snapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSnapshotNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to get snapshot: %w", err)
	}

	return entity.Snapshot(value), nil
}
