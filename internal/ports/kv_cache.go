package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports that a key is absent. Callers fall through to the
// backing store; a cache failure must never fail a read.
var ErrCacheMiss = errors.New("cache miss")

// Port: TTL'd byte cache for hot read paths (catalog listings, tracking
// lookups).
type KVCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
