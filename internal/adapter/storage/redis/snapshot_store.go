package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// SnapshotStore implements ports.SnapshotStore on Redis. Each snapshot key
// holds the full serialized value; writers replace it wholesale, so the last
// writer wins.
type SnapshotStore struct {
	client *goredis.Client
	prefix string
}

// NewSnapshotStore creates a Redis-backed snapshot store.
func NewSnapshotStore(client *goredis.Client) *SnapshotStore {
	return &SnapshotStore{
		client: client,
		prefix: "snapshot:",
	}
}

// Get retrieves a snapshot by key. Returns nil, nil if the key is absent.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
	}
	return val, nil
}

// Set replaces the snapshot stored under key. Snapshots never expire.
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}
