package interfaces

import (
	"context"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// MarketDataProvider fetches live CoinGecko data, already normalized
type MarketDataProvider interface {
	SimplePrices(ctx context.Context, coinIDs []string) ([]entities.CoinPrice, error)
	MarketOverview(ctx context.Context) (entities.MarketOverview, error)
}

// FearGreedProvider fetches the live Fear & Greed index
type FearGreedProvider interface {
	Current(ctx context.Context) (entities.FearGreedReading, error)
	History(ctx context.Context, days int) ([]entities.FearGreedPoint, error)
}

// FundingSource is one exchange quoting perpetual funding rates
type FundingSource interface {
	Name() string
	FundingRates(ctx context.Context, symbols []string) ([]entities.FundingQuote, error)
}

// FundingProvider merges funding quotes across exchanges
type FundingProvider interface {
	MergedFundingRates(ctx context.Context, symbols []string) ([]entities.FundingRate, error)
}
