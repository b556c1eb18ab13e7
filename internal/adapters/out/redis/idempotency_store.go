// Package redis keeps placement results keyed by the client's Idempotency-Key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "idempotency:place-order:"

type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore stores results for ttl. A non-positive ttl keeps them forever.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl < 0 {
		ttl = 0
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrIdempotencyKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Save uses SETNX so the first result recorded under a key wins.
func (s *IdempotencyStore) Save(ctx context.Context, key string, value []byte) (bool, error) {
	stored, err := s.client.SetNX(ctx, keyPrefix+key, value, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("save %s: %w", key, err)
	}
	return stored, nil
}

// Ping checks the connection; serve calls it once at startup.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
