package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SnapshotStore implements ports.SnapshotStore on PostgreSQL. Each snapshot
// key maps to a single row holding the full serialized value; writers replace
// the row wholesale, so the last writer wins.
type SnapshotStore struct {
	pool Pool
}

// NewSnapshotStore creates a PostgreSQL-backed snapshot store.
func NewSnapshotStore(pool Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

// EnsureSchema creates the snapshot table if it does not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	query := `CREATE TABLE IF NOT EXISTS vg_snapshots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by key. Returns nil, nil if the key is absent.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM vg_snapshots WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot %q: %w", key, err)
	}
	return value, nil
}

// Set replaces the snapshot stored under key.
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO vg_snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set snapshot %q: %w", key, err)
	}
	return nil
}
