package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "calcsuite:history:"
	indexKey        = "calcsuite:history:index"
)

// RedisStore persists records in redis: each record as a JSON value,
// plus a list of IDs newest first trimmed to the retention bound.
type RedisStore struct {
	client *redis.Client
	max    int64
}

// NewRedisStore connects to redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string, db, max int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("history: redis ping %s: %w", addr, err)
	}
	if max < 1 {
		max = 1
	}
	return &RedisStore{client: client, max: int64(max)}, nil
}

func (s *RedisStore) Add(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: marshal record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, recordKeyPrefix+rec.ID, payload, 0)
	pipe.LPush(ctx, indexKey, rec.ID)

	// Evict beyond the retention bound, values included.
	evicted := pipe.LRange(ctx, indexKey, s.max, -1)
	pipe.LTrim(ctx, indexKey, 0, s.max-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("history: redis add: %w", err)
	}
	if ids, err := evicted.Result(); err == nil && len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = recordKeyPrefix + id
		}
		s.client.Del(ctx, keys...)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	val, err := s.client.Get(ctx, recordKeyPrefix+id).Result()
	if err == redis.Nil {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("history: redis get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return Record{}, fmt.Errorf("history: unmarshal record %s: %w", id, err)
	}
	return rec, nil
}

func (s *RedisStore) List(ctx context.Context, limit int) ([]Record, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	ids, err := s.client.LRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("history: redis list: %w", err)
	}

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if err == ErrNotFound {
			// Index entry outlived its value; skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
