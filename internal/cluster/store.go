package cluster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/foodbridge/backend/internal/shared"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotKey = "clusters:latest"

	// A snapshot older than a few job intervals is stale reporting data;
	// letting it expire beats serving it forever after the job stops.
	snapshotTTL = 24 * time.Hour
)

// Store keeps the latest clustering snapshot in Redis. Each run replaces the
// previous snapshot outright.
type Store struct {
	redis *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

func (s *Store) Replace(ctx context.Context, records []Record) error {
	snap := Snapshot{
		GeneratedAt: time.Now().UTC(),
		Clusters:    records,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, snapshotKey, data, snapshotTTL).Err()
}

func (s *Store) Latest(ctx context.Context) (*Snapshot, error) {
	data, err := s.redis.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
