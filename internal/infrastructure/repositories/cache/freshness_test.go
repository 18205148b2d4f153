package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
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

type overview struct {
	Markets  int      `json:"markets"`
	Trending []string `json:"trending"`
}

func TestFreshnessCache_FreshWithinTTL(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	c := NewFreshnessCache[overview]("overview", NewMemoryStore(), time.Minute, WithClock(clock.Now))

	require.NoError(t, c.Put(ctx, "global", overview{Markets: 900}))

	clock.Advance(time.Minute)
	value, ok := c.GetFresh(ctx, "global")
	require.True(t, ok, "boundary is inclusive")
	assert.Equal(t, 900, value.Markets)

	clock.Advance(time.Nanosecond)
	_, ok = c.GetFresh(ctx, "global")
	assert.False(t, ok)

	value, ok = c.GetAny(ctx, "global")
	require.True(t, ok, "stale reads have no age limit")
	assert.Equal(t, 900, value.Markets)
}

func TestFreshnessCache_StaleReadableIndefinitely(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	c := NewFreshnessCache[int]("fear_greed_history", NewMemoryStore(), time.Minute, WithClock(clock.Now))

	require.NoError(t, c.Put(ctx, "30", 42))
	clock.Advance(365 * 24 * time.Hour)

	value, ok := c.GetAny(ctx, "30")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestFreshnessCache_MissingKey(t *testing.T) {
	c := NewFreshnessCache[int]("x", NewMemoryStore(), time.Minute)

	_, ok := c.GetFresh(context.Background(), "nope")
	assert.False(t, ok)
	_, ok = c.GetAny(context.Background(), "nope")
	assert.False(t, ok)
}

func TestFreshnessCache_PutOverwritesAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	c := NewFreshnessCache[int]("x", NewMemoryStore(), time.Minute, WithClock(clock.Now))

	require.NoError(t, c.Put(ctx, "k", 1))
	clock.Advance(2 * time.Minute)
	_, ok := c.GetFresh(ctx, "k")
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, "k", 2))
	value, ok := c.GetFresh(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestFreshnessCache_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	c := NewFreshnessCache[overview]("overview", NewMemoryStore(), time.Minute)

	original := overview{Trending: []string{"pepe"}}
	require.NoError(t, c.Put(ctx, "global", original))
	original.Trending[0] = "mutated after put"

	first, _ := c.GetAny(ctx, "global")
	first.Trending[0] = "mutated after get"

	second, _ := c.GetAny(ctx, "global")
	assert.Equal(t, []string{"pepe"}, second.Trending)
}

type failingStore struct {
	*MemoryStore
	err error
}

func (f *failingStore) Get(ctx context.Context, namespace, key string) (Record, error) {
	return Record{}, f.err
}

func (f *failingStore) Put(ctx context.Context, namespace, key string, record Record) error {
	return f.err
}

func TestFreshnessCache_StoreErrorsBehaveAsMiss(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("redis down")
	c := NewFreshnessCache[int]("x", &failingStore{MemoryStore: NewMemoryStore(), err: boom}, time.Minute)

	_, ok := c.GetFresh(ctx, "k")
	assert.False(t, ok)
	_, ok = c.GetAny(ctx, "k")
	assert.False(t, ok)

	err := c.Put(ctx, "k", 1)
	assert.ErrorIs(t, err, boom)
}

func TestFreshnessCache_CorruptRecordIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "x", "k", Record{Value: `"not an int"`, CachedAt: time.Now()}))

	c := NewFreshnessCache[int]("x", store, time.Minute)
	_, ok := c.GetAny(ctx, "k")
	assert.False(t, ok)
}

func TestFreshnessCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewFreshnessCache[int]("x", NewMemoryStore(), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = c.Put(ctx, "k", i)
			} else {
				_, _ = c.GetAny(ctx, "k")
			}
		}(i)
	}
	wg.Wait()

	_, ok := c.GetAny(ctx, "k")
	assert.True(t, ok)
}
