package services

import (
	"context"

	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/repositories/cache"
)

// Resource names used for cache namespaces, metrics and logs
const (
	ResourcePrices           = "prices"
	ResourceOverview         = "overview"
	ResourceFunding          = "funding"
	ResourceFearGreedCurrent = "fear_greed"
	ResourceFearGreedHistory = "fear_greed_history"

	overviewKey         = "global"
	fearGreedCurrentKey = "current"
)

// MarketService resolves CoinGecko prices and the market overview with stale fallback
type MarketService struct {
	provider     interfaces.MarketDataProvider
	prices       *cache.PriceCache
	overview     *resilience.Resolver[entities.MarketOverview]
	defaultCoins []string
}

// NewMarketService wires the CoinGecko provider to its caches
func NewMarketService(provider interfaces.MarketDataProvider, prices *cache.PriceCache, overview resilience.Cache[entities.MarketOverview], defaultCoins []string) *MarketService {
	if len(defaultCoins) == 0 {
		defaultCoins = entities.DefaultCoinIDs
	}
	return &MarketService{
		provider:     provider,
		prices:       prices,
		overview:     resilience.NewResolver(ResourceOverview, overview),
		defaultCoins: defaultCoins,
	}
}

// CoinIDsOrDefault normalizes requested ids, substituting the defaults when none remain
func (s *MarketService) CoinIDsOrDefault(coinIDs []string) []string {
	ids := entities.NormalizeList(coinIDs)
	if len(ids) == 0 {
		return s.defaultCoins
	}
	return ids
}

// ResolvePrices returns the prices of coinIDs. Stale reads may be projected out of a
// larger cached batch.
func (s *MarketService) ResolvePrices(ctx context.Context, coinIDs []string) resilience.Result[[]entities.CoinPrice] {
	ids := s.CoinIDsOrDefault(coinIDs)
	view := s.prices.For(ids)

	logging.Debug(ctx, "Resolving prices", logging.Fields{
		"coin_ids":  ids,
		"cache_key": view.Key(),
	})

	return resilience.Resolve(ctx, ResourcePrices, view, view.Key(), func(ctx context.Context) ([]entities.CoinPrice, error) {
		return s.provider.SimplePrices(ctx, ids)
	})
}

// ResolveOverview returns the global numbers and trending coins
func (s *MarketService) ResolveOverview(ctx context.Context) resilience.Result[entities.MarketOverview] {
	return s.overview.Resolve(ctx, overviewKey, s.provider.MarketOverview)
}
