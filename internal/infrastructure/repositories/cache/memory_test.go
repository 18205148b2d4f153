package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "prices", "bitcoin")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put(context.Background(), "prices", "ethereum", Record{Value: "[]"}))
	_, err = store.Get(context.Background(), "prices", "bitcoin")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_PutOverwritesAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Put(ctx, "prices", "b", Record{Value: `1`, CachedAt: t0}))
	require.NoError(t, store.Put(ctx, "prices", "a", Record{Value: `2`, CachedAt: t0}))
	require.NoError(t, store.Put(ctx, "prices", "b", Record{Value: `3`, CachedAt: t0.Add(time.Minute)}))

	record, err := store.Get(ctx, "prices", "b")
	require.NoError(t, err)
	assert.Equal(t, `3`, record.Value)
	assert.Equal(t, t0.Add(time.Minute), record.CachedAt)

	keys, err := store.Keys(ctx, "prices")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestMemoryStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "overview", "global", Record{Value: `{}`}))

	_, err := store.Get(ctx, "prices", "global")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	keys, err := store.Keys(ctx, "prices")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStore_KeysReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "ns", "a", Record{Value: `1`}))

	keys, _ := store.Keys(ctx, "ns")
	keys[0] = "mutated"

	again, _ := store.Keys(ctx, "ns")
	assert.Equal(t, []string{"a"}, again)
}

func TestMemoryStore_Concurrency(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(ctx, "ns", fmt.Sprintf("k%d", i%10), Record{Value: fmt.Sprintf("%d", i)})
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Get(ctx, "ns", fmt.Sprintf("k%d", i%10))
			_, _ = store.Keys(ctx, "ns")
		}(i)
	}
	wg.Wait()

	keys, err := store.Keys(ctx, "ns")
	require.NoError(t, err)
	assert.Len(t, keys, 10)
}

func TestMemoryStore_PingAndClose(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}
