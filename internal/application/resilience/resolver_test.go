package resilience

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/repositories/cache"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newCache(c *clock) *cache.FreshnessCache[string] {
	return cache.NewFreshnessCache[string]("overview", cache.NewMemoryStore(), time.Minute, cache.WithClock(c.Now))
}

func countingFetch(calls *int32, value string, err error) FetchFunc[string] {
	return func(ctx context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return value, err
	}
}

func TestResolve_FreshHitSkipsFetch(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Unix(1_700_000_000, 0)}
	fc := newCache(c)
	require.NoError(t, fc.Put(ctx, "k", "cached"))

	var calls int32
	result := NewResolver[string]("overview", fc).Resolve(ctx, "k", countingFetch(&calls, "live", nil))

	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "cached", result.Value)
	assert.Equal(t, int32(0), calls)
}

func TestResolve_LiveSuccessIsCached(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Unix(1_700_000_000, 0)}
	fc := newCache(c)

	var calls int32
	result := Resolve[string](ctx, "overview", fc, "k", countingFetch(&calls, "live", nil))

	assert.Equal(t, Ok("live"), result)
	assert.Equal(t, int32(1), calls)

	cached, ok := fc.GetFresh(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "live", cached)
}

func TestResolve_FailureFallsBackToStale(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Unix(1_700_000_000, 0)}
	fc := newCache(c)
	require.NoError(t, fc.Put(ctx, "k", "old"))
	c.now = c.now.Add(time.Hour)

	var calls int32
	fetchErr := errors.New("CoinGecko API error: 429")
	result := Resolve[string](ctx, "overview", fc, "k", countingFetch(&calls, "", fetchErr))

	assert.True(t, result.IsStale())
	assert.Equal(t, "old", result.Value)
	assert.Equal(t, "CoinGecko API error: 429", result.Reason)
	assert.NoError(t, result.Err)
	assert.Equal(t, int32(1), calls)
}

func TestResolve_FailureWithoutCacheIsErr(t *testing.T) {
	ctx := context.Background()
	fc := newCache(&clock{now: time.Unix(1_700_000_000, 0)})

	fetchErr := errors.New("cannot reach CoinGecko API")
	var calls int32
	result := Resolve[string](ctx, "overview", fc, "k", countingFetch(&calls, "", fetchErr))

	require.True(t, result.Failed())
	assert.ErrorIs(t, result.Err, ErrNoCacheAvailable)
	assert.ErrorIs(t, result.Err, fetchErr)
	assert.Empty(t, result.Value)
}

func TestResolve_FailedFetchDoesNotOverwriteCache(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Unix(1_700_000_000, 0)}
	fc := newCache(c)
	require.NoError(t, fc.Put(ctx, "k", "old"))
	c.now = c.now.Add(time.Hour)

	var calls int32
	_ = Resolve[string](ctx, "overview", fc, "k", countingFetch(&calls, "partial", errors.New("boom")))

	value, ok := fc.GetAny(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "old", value)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "stale", StatusStale.String())
	assert.Equal(t, "error", StatusErr.String())
}
