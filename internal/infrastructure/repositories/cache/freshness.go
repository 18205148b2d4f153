package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

// Cache lookup results recorded in metrics
const (
	resultFreshHit   = "fresh_hit"
	resultStaleHit   = "stale_hit"
	resultMiss       = "miss"
	resultProjection = "projection"
	resultSet        = "set"
	resultError      = "error"
)

// Option configures a FreshnessCache
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// FreshnessCache stores the last successful value per key and answers two questions:
// is there a value younger than the TTL, and is there any value at all.
type FreshnessCache[T any] struct {
	name  string
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewFreshnessCache creates a cache named name (also its store namespace)
func NewFreshnessCache[T any](name string, store Store, ttl time.Duration, opts ...Option) *FreshnessCache[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &FreshnessCache[T]{
		name:  name,
		store: store,
		ttl:   ttl,
		now:   o.now,
	}
}

// Name returns the cache name
func (c *FreshnessCache[T]) Name() string {
	return c.name
}

// GetFresh returns the value for key only if it was cached within the TTL
func (c *FreshnessCache[T]) GetFresh(ctx context.Context, key string) (T, bool) {
	var zero T

	record, ok := c.load(ctx, logging.CacheOpGetFresh, key)
	if !ok {
		return zero, false
	}
	if !utils.IsFresh(record.CachedAt, c.now(), c.ttl) {
		c.observe(ctx, logging.CacheOpGetFresh, key, resultMiss)
		return zero, false
	}

	value, err := c.decode(record)
	if err != nil {
		c.fail(ctx, logging.CacheOpGetFresh, key, err)
		return zero, false
	}
	c.observe(ctx, logging.CacheOpGetFresh, key, resultFreshHit)
	return value, true
}

// GetAny returns the value for key regardless of its age
func (c *FreshnessCache[T]) GetAny(ctx context.Context, key string) (T, bool) {
	var zero T

	record, ok := c.load(ctx, logging.CacheOpGetAny, key)
	if !ok {
		return zero, false
	}

	value, err := c.decode(record)
	if err != nil {
		c.fail(ctx, logging.CacheOpGetAny, key, err)
		return zero, false
	}
	c.observe(ctx, logging.CacheOpGetAny, key, resultStaleHit)
	return value, true
}

// Put stores value under key with the current time, replacing any previous value
func (c *FreshnessCache[T]) Put(ctx context.Context, key string, value T) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s cache value: %w", c.name, err)
	}

	record := Record{Value: string(encoded), CachedAt: c.now()}
	if err := c.store.Put(ctx, c.name, key, record); err != nil {
		c.fail(ctx, logging.CacheOpSet, key, err)
		return fmt.Errorf("failed to store %s cache value: %w", c.name, err)
	}

	metrics.RecordCacheOperation(c.name, resultSet)
	logging.Cache().Set(ctx, c.qualified(key), c.ttl.Seconds())
	return nil
}

// entries loads every record of the namespace in insertion order
func (c *FreshnessCache[T]) entries(ctx context.Context) ([]T, error) {
	keys, err := c.store.Keys(ctx, c.name)
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, len(keys))
	for _, key := range keys {
		record, err := c.store.Get(ctx, c.name, key)
		if err != nil {
			continue
		}
		value, err := c.decode(record)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

func (c *FreshnessCache[T]) load(ctx context.Context, operation, key string) (Record, bool) {
	record, err := c.store.Get(ctx, c.name, key)
	if err == nil {
		return record, true
	}
	if errors.Is(err, ErrKeyNotFound) {
		c.observe(ctx, operation, key, resultMiss)
	} else {
		c.fail(ctx, operation, key, err)
	}
	return Record{}, false
}

func (c *FreshnessCache[T]) decode(record Record) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(record.Value), &value); err != nil {
		return value, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return value, nil
}

func (c *FreshnessCache[T]) qualified(key string) string {
	return c.name + ":" + key
}

func (c *FreshnessCache[T]) observe(ctx context.Context, operation, key, result string) {
	metrics.RecordCacheOperation(c.name, result)
	logging.CacheOperation(ctx, operation, c.qualified(key), result != resultMiss)
}

func (c *FreshnessCache[T]) fail(ctx context.Context, operation, key string, err error) {
	metrics.RecordCacheOperation(c.name, resultError)
	logging.Cache().CacheError(ctx, operation, c.qualified(key), err)
}
