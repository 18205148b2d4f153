package resilience

import (
	"context"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

// Cache is the freshness cache contract the resolver depends on
type Cache[T any] interface {
	GetFresh(ctx context.Context, key string) (T, bool)
	GetAny(ctx context.Context, key string) (T, bool)
	Put(ctx context.Context, key string, value T) error
}

// FetchFunc performs a live fetch, including normalization
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Resolver applies the fresh-cache, live-fetch, stale-cache sequence for one resource
type Resolver[T any] struct {
	resource string
	cache    Cache[T]
}

// NewResolver creates a resolver for resource backed by cache
func NewResolver[T any](resource string, cache Cache[T]) *Resolver[T] {
	return &Resolver[T]{resource: resource, cache: cache}
}

// Resolve resolves key using the resolver's cache
func (r *Resolver[T]) Resolve(ctx context.Context, key string, fetch FetchFunc[T]) Result[T] {
	return Resolve(ctx, r.resource, r.cache, key, fetch)
}

// Resolve returns the fresh cached value for key if there is one, otherwise fetches
// live and caches the result. When the fetch fails it falls back to any cached value
// regardless of age. It never panics and never returns a zero Result.
func Resolve[T any](ctx context.Context, resource string, cache Cache[T], key string, fetch FetchFunc[T]) Result[T] {
	if value, ok := cache.GetFresh(ctx, key); ok {
		logging.Business().ResourceServed(ctx, resource, "fresh_cache", false)
		return Ok(value)
	}

	value, err := fetch(ctx)
	if err == nil {
		if putErr := cache.Put(ctx, key, value); putErr != nil {
			logging.WarnWithError(ctx, "Failed to cache live value", putErr, logging.Fields{
				logging.FieldResource: resource,
			})
		}
		logging.Business().ResourceServed(ctx, resource, "live", false)
		return Ok(value)
	}

	if cached, ok := cache.GetAny(ctx, key); ok {
		metrics.RecordStaleFallback(resource)
		logging.Business().StaleFallback(ctx, resource, err)
		return Stale(cached, err.Error())
	}

	metrics.RecordResourceUnavailable(resource)
	logging.Business().ResourceUnavailable(ctx, resource, err)
	return Err[T](err)
}
