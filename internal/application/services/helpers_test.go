package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type MockMarketDataProvider struct {
	mock.Mock
}

func (m *MockMarketDataProvider) SimplePrices(ctx context.Context, coinIDs []string) ([]entities.CoinPrice, error) {
	args := m.Called(ctx, coinIDs)
	rows, _ := args.Get(0).([]entities.CoinPrice)
	return rows, args.Error(1)
}

func (m *MockMarketDataProvider) MarketOverview(ctx context.Context) (entities.MarketOverview, error) {
	args := m.Called(ctx)
	overview, _ := args.Get(0).(entities.MarketOverview)
	return overview, args.Error(1)
}

type MockFearGreedProvider struct {
	mock.Mock
}

func (m *MockFearGreedProvider) Current(ctx context.Context) (entities.FearGreedReading, error) {
	args := m.Called(ctx)
	reading, _ := args.Get(0).(entities.FearGreedReading)
	return reading, args.Error(1)
}

func (m *MockFearGreedProvider) History(ctx context.Context, days int) ([]entities.FearGreedPoint, error) {
	args := m.Called(ctx, days)
	points, _ := args.Get(0).([]entities.FearGreedPoint)
	return points, args.Error(1)
}

type MockFundingProvider struct {
	mock.Mock
}

func (m *MockFundingProvider) MergedFundingRates(ctx context.Context, symbols []string) ([]entities.FundingRate, error) {
	args := m.Called(ctx, symbols)
	rows, _ := args.Get(0).([]entities.FundingRate)
	return rows, args.Error(1)
}

func f64(v float64) *float64 {
	return &v
}

func priceRow(id string, price, marketCap float64) entities.CoinPrice {
	return entities.CoinPrice{
		ID:        id,
		Symbol:    entities.SymbolForCoin(id),
		PriceUSD:  f64(price),
		MarketCap: f64(marketCap),
	}
}
