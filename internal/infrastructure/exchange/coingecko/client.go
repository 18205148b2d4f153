package coingecko

import (
	"context"
	"net/url"
	"strings"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

const (
	// ServiceName is the display name used in upstream errors
	ServiceName = "CoinGecko"
	// DefaultBaseURL is the public API root
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultTrendingLimit bounds the trending list of the overview
	DefaultTrendingLimit = 5
)

// Client reads simple prices, global numbers and trending coins from CoinGecko
type Client struct {
	api           *upstream.Client
	trendingLimit int
}

// NewClient wraps an upstream client
func NewClient(api *upstream.Client, trendingLimit int) *Client {
	if trendingLimit <= 0 {
		trendingLimit = DefaultTrendingLimit
	}
	return &Client{api: api, trendingLimit: trendingLimit}
}

// SimplePrices fetches USD quotes for coinIDs
func (c *Client) SimplePrices(ctx context.Context, coinIDs []string) ([]entities.CoinPrice, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(coinIDs, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_market_cap", "true")
	params.Set("include_24hr_vol", "true")
	params.Set("include_24hr_change", "true")
	params.Set("include_last_updated_at", "true")

	payload, err := c.api.GetJSON(ctx, "/simple/price", params)
	if err != nil {
		return nil, err
	}
	if !payload.IsObject() {
		return nil, upstream.NewPayloadError(ServiceName, "returned an unexpected /simple/price payload")
	}
	return NormalizeSimplePrices(payload, coinIDs), nil
}

// GlobalOverview fetches the aggregate market numbers
func (c *Client) GlobalOverview(ctx context.Context) (entities.GlobalMarket, error) {
	payload, err := c.api.GetJSON(ctx, "/global", nil)
	if err != nil {
		return entities.GlobalMarket{}, err
	}
	if !payload.IsObject() {
		return entities.GlobalMarket{}, upstream.NewPayloadError(ServiceName, "returned an unexpected /global payload")
	}
	return NormalizeGlobal(payload), nil
}

// Trending fetches the trending search list, bounded by limit
func (c *Client) Trending(ctx context.Context, limit int) ([]entities.TrendingCoin, error) {
	payload, err := c.api.GetJSON(ctx, "/search/trending", nil)
	if err != nil {
		return nil, err
	}
	if !payload.IsObject() {
		return nil, upstream.NewPayloadError(ServiceName, "returned an unexpected /search/trending payload")
	}
	return NormalizeTrending(payload, limit), nil
}

// MarketOverview fetches /global then /search/trending. Either failing fails the overview.
func (c *Client) MarketOverview(ctx context.Context) (entities.MarketOverview, error) {
	global, err := c.GlobalOverview(ctx)
	if err != nil {
		return entities.MarketOverview{}, err
	}

	trending, err := c.Trending(ctx, c.trendingLimit)
	if err != nil {
		return entities.MarketOverview{}, err
	}

	return entities.MarketOverview{Global: global, Trending: trending}, nil
}
