package cache

import (
	"context"
	"time"
)

// Record is one cached payload. Value holds the JSON encoding of the cached value
// so every read hands the caller an independent copy.
type Record struct {
	Value    string
	CachedAt time.Time
}

// Store keeps records grouped by namespace. Records are never evicted and a
// newer Put for the same key overwrites the previous record in place.
type Store interface {
	Get(ctx context.Context, namespace, key string) (Record, error)
	Put(ctx context.Context, namespace, key string, record Record) error
	// Keys lists the keys of a namespace in first-insertion order
	Keys(ctx context.Context, namespace string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
