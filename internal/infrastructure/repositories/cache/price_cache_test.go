package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

func priceRow(id string, price float64) entities.CoinPrice {
	return entities.CoinPrice{ID: id, Symbol: entities.SymbolForCoin(id), PriceUSD: &price}
}

func ids(rows []entities.CoinPrice) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestPricesKey(t *testing.T) {
	assert.Equal(t, "bitcoin,ethereum,solana", PricesKey([]string{"solana", "bitcoin", "ethereum", "bitcoin"}))
	assert.Equal(t, PricesKey([]string{"a", "b"}), PricesKey([]string{"b", "a"}))
	assert.Equal(t, "", PricesKey(nil))
}

func TestPriceCache_FreshRequiresExactKey(t *testing.T) {
	ctx := context.Background()
	c := NewPriceCache(NewMemoryStore(), time.Minute)

	all := []string{"bitcoin", "ethereum", "solana"}
	require.NoError(t, c.For(all).Put(ctx, "", []entities.CoinPrice{
		priceRow("bitcoin", 50000), priceRow("ethereum", 3000), priceRow("solana", 100),
	}))

	_, ok := c.For([]string{"bitcoin"}).GetFresh(ctx, "")
	assert.False(t, ok, "a superset entry never satisfies a fresh read")

	rows, ok := c.For([]string{"solana", "ethereum", "bitcoin"}).GetFresh(ctx, "")
	require.True(t, ok, "order of the request does not change the key")
	assert.Len(t, rows, 3)
}

func TestPriceCache_StaleProjectsSupersetInRequestedOrder(t *testing.T) {
	ctx := context.Background()
	c := NewPriceCache(NewMemoryStore(), time.Minute)

	require.NoError(t, c.Put(ctx, PricesKey([]string{"bitcoin", "ethereum", "solana"}), []entities.CoinPrice{
		priceRow("bitcoin", 50000), priceRow("ethereum", 3000), priceRow("solana", 100),
	}))

	rows, ok := c.GetAnyFor(ctx, []string{"solana", "bitcoin"})

	require.True(t, ok)
	assert.Equal(t, []string{"solana", "bitcoin"}, ids(rows))
	assert.Equal(t, 100.0, *rows[0].PriceUSD)
}

func TestPriceCache_StaleMissWhenNoEntryCovers(t *testing.T) {
	ctx := context.Background()
	c := NewPriceCache(NewMemoryStore(), time.Minute)

	require.NoError(t, c.Put(ctx, PricesKey([]string{"bitcoin", "ethereum"}), []entities.CoinPrice{
		priceRow("bitcoin", 50000), priceRow("ethereum", 3000),
	}))

	_, ok := c.GetAnyFor(ctx, []string{"bitcoin", "dogecoin"})
	assert.False(t, ok)

	_, ok = c.GetAnyFor(ctx, nil)
	assert.False(t, ok)
}

func TestPriceCache_FirstSupersetInInsertionOrderWins(t *testing.T) {
	ctx := context.Background()
	c := NewPriceCache(NewMemoryStore(), time.Minute)

	require.NoError(t, c.Put(ctx, PricesKey([]string{"bitcoin", "solana"}), []entities.CoinPrice{
		priceRow("bitcoin", 1), priceRow("solana", 1),
	}))
	require.NoError(t, c.Put(ctx, PricesKey([]string{"bitcoin", "ethereum", "solana"}), []entities.CoinPrice{
		priceRow("bitcoin", 2), priceRow("ethereum", 2), priceRow("solana", 2),
	}))

	rows, ok := c.GetAnyFor(ctx, []string{"bitcoin"})

	require.True(t, ok)
	assert.Equal(t, 1.0, *rows[0].PriceUSD)
}

func TestPriceCache_ExactStaleHitKeepsStoredOrder(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	c := NewPriceCache(NewMemoryStore(), time.Minute, WithClock(clock.Now))

	view := c.For([]string{"solana", "bitcoin"})
	require.NoError(t, view.Put(ctx, "", []entities.CoinPrice{priceRow("bitcoin", 1), priceRow("solana", 1)}))
	clock.Advance(time.Hour)

	_, fresh := view.GetFresh(ctx, "")
	assert.False(t, fresh)

	rows, ok := view.GetAny(ctx, "")
	require.True(t, ok)
	assert.Equal(t, []string{"bitcoin", "solana"}, ids(rows))
	assert.Equal(t, "bitcoin,solana", view.Key())
}
