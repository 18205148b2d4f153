package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/repositories/cache"
)

func newFearGreedService(provider *MockFearGreedProvider, clock *testClock) *FearGreedService {
	store := cache.NewMemoryStore()
	current := cache.NewFreshnessCache[entities.FearGreedReading](ResourceFearGreedCurrent, store, 5*time.Minute, cache.WithClock(clock.Now))
	history := cache.NewFreshnessCache[[]entities.FearGreedPoint](ResourceFearGreedHistory, store, 5*time.Minute, cache.WithClock(clock.Now))
	return NewFearGreedService(provider, current, history)
}

func TestFearGreedService_CurrentStaleFallback(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	provider := &MockFearGreedProvider{}
	reading := entities.FearGreedReading{Value: 72, ValueClassification: "Greed", Timestamp: 1717200000, TimeUpdated: "2024-06-01 00:00:00 UTC"}
	provider.On("Current", mock.Anything).Return(reading, nil).Once()
	provider.On("Current", mock.Anything).Return(entities.FearGreedReading{}, errors.New("Fear & Greed API error: 503")).Once()
	svc := newFearGreedService(provider, clock)

	live := svc.ResolveFearGreedCurrent(ctx)
	clock.Advance(10 * time.Minute)
	stale := svc.ResolveFearGreedCurrent(ctx)

	assert.Equal(t, resilience.StatusOK, live.Status)
	require.Equal(t, resilience.StatusStale, stale.Status)
	assert.Equal(t, reading, stale.Value)
	assert.Equal(t, "Fear & Greed API error: 503", stale.Reason)
}

func TestFearGreedService_HistoryCachedPerDays(t *testing.T) {
	ctx := context.Background()
	provider := &MockFearGreedProvider{}
	week := []entities.FearGreedPoint{{Value: 50, Date: "2024-06-01"}}
	provider.On("History", mock.Anything, 7).Return(week, nil).Once()
	provider.On("History", mock.Anything, 30).Return(nil, errors.New("down")).Once()
	svc := newFearGreedService(provider, newTestClock())

	first := svc.ResolveFearGreedHistory(ctx, 7)
	again := svc.ResolveFearGreedHistory(ctx, 7)
	other := svc.ResolveFearGreedHistory(ctx, 30)

	assert.Equal(t, resilience.StatusOK, first.Status)
	assert.Equal(t, week, again.Value)
	assert.True(t, other.Failed(), "a different days value has its own entry")
	provider.AssertNumberOfCalls(t, "History", 2)
}
