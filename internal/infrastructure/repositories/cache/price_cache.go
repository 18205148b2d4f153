package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

// PricesCacheName is the namespace of the simple prices cache
const PricesCacheName = "prices"

// PriceCache is the simple prices cache. Stale reads can be answered from any cached
// batch that covers the requested coins.
type PriceCache struct {
	*FreshnessCache[[]entities.CoinPrice]
}

// NewPriceCache creates the prices cache on store
func NewPriceCache(store Store, ttl time.Duration, opts ...Option) *PriceCache {
	return &PriceCache{
		FreshnessCache: NewFreshnessCache[[]entities.CoinPrice](PricesCacheName, store, ttl, opts...),
	}
}

// PricesKey builds the cache key of a coin id list: de-duplicated, sorted, comma joined
func PricesKey(coinIDs []string) string {
	unique := entities.NormalizeList(coinIDs)
	sort.Strings(unique)
	return strings.Join(unique, ",")
}

// GetAnyFor returns the rows for coinIDs regardless of age. Without an exact entry it
// projects the first cached batch, in insertion order, whose ids cover every
// requested coin. Projected rows follow the requested order.
func (p *PriceCache) GetAnyFor(ctx context.Context, coinIDs []string) ([]entities.CoinPrice, bool) {
	ids := entities.NormalizeList(coinIDs)
	if rows, ok := p.FreshnessCache.GetAny(ctx, PricesKey(ids)); ok {
		return rows, true
	}
	if len(ids) == 0 {
		return nil, false
	}

	batches, err := p.entries(ctx)
	if err != nil {
		p.fail(ctx, logging.CacheOpGetAny, PricesKey(ids), err)
		return nil, false
	}

	for _, rows := range batches {
		if projected, ok := project(rows, ids); ok {
			metrics.RecordCacheOperation(p.name, resultProjection)
			logging.CacheOperation(ctx, logging.CacheOpGetAny, p.qualified(PricesKey(ids)), true)
			return projected, true
		}
	}
	return nil, false
}

// For returns a view of the cache bound to one coin id list
func (p *PriceCache) For(coinIDs []string) *PriceView {
	ids := entities.NormalizeList(coinIDs)
	return &PriceView{cache: p, ids: ids, key: PricesKey(ids)}
}

// PriceView binds a PriceCache to one request so stale reads can project in the
// requested order. Keys passed to its methods are ignored in favour of the bound list.
type PriceView struct {
	cache *PriceCache
	ids   []string
	key   string
}

// Key returns the cache key of the bound coin list
func (v *PriceView) Key() string {
	return v.key
}

// GetFresh requires an exact key match
func (v *PriceView) GetFresh(ctx context.Context, _ string) ([]entities.CoinPrice, bool) {
	return v.cache.GetFresh(ctx, v.key)
}

// GetAny falls back to superset projection
func (v *PriceView) GetAny(ctx context.Context, _ string) ([]entities.CoinPrice, bool) {
	return v.cache.GetAnyFor(ctx, v.ids)
}

// Put stores rows under the bound key
func (v *PriceView) Put(ctx context.Context, _ string, rows []entities.CoinPrice) error {
	return v.cache.Put(ctx, v.key, rows)
}

// project picks the requested rows out of a cached batch, or reports false when the
// batch does not cover all of them
func project(rows []entities.CoinPrice, requested []string) ([]entities.CoinPrice, bool) {
	byID := make(map[string]entities.CoinPrice, len(rows))
	for _, row := range rows {
		if row.ID != "" {
			byID[row.ID] = row
		}
	}

	projected := make([]entities.CoinPrice, 0, len(requested))
	for _, id := range requested {
		row, ok := byID[id]
		if !ok {
			return nil, false
		}
		projected = append(projected, row)
	}
	return projected, true
}
