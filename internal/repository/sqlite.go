package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oxolabs/oxo-console/internal/entity"
)

type sqliteSnapshotRepository struct {
	conn *sql.DB
}

// NewSQLiteSnapshotRepository - returns a snapshot repository backed by the
// snapshots table, which holds at most one row.
func NewSQLiteSnapshotRepository(conn *sql.DB) SnapshotRepository {
	return &sqliteSnapshotRepository{conn: conn}
}

func (that *sqliteSnapshotRepository) Store(ctx context.Context, snapshot entity.Snapshot) error {
	query := `INSERT INTO snapshots (id, board) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET board = excluded.board`

	if _, err := that.conn.ExecContext(ctx, query, string(snapshot)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (that *sqliteSnapshotRepository) Load(ctx context.Context) (entity.Snapshot, error) {
	query := `SELECT board FROM snapshots WHERE id = 1`

	var board string

	err := that.conn.QueryRowContext(ctx, query).Scan(&board)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSnapshotNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to get snapshot: %w", err)
	}

	return entity.Snapshot(board), nil
}
