package ports

import (
	"context"
	"errors"
)

// ErrIdempotencyKeyNotFound is returned by IdempotencyStore.Get for unknown keys.
var ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")

// IdempotencyStore remembers the outcome of requests sent with an Idempotency-Key,
// so that a client retrying a successful placement gets the same order back
// instead of a second one.
type IdempotencyStore interface {
	// Get returns the stored response for key or ErrIdempotencyKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Save stores value under key unless the key is already taken.
	// It reports whether this call stored the value.
	Save(ctx context.Context, key string, value []byte) (bool, error)
}
