package coingecko

import (
	"sort"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

// NormalizeSimplePrices builds one row per requested id present in a /simple/price
// payload, sorted by market cap descending. Missing market caps sort as zero.
func NormalizeSimplePrices(payload gjson.Result, coinIDs []string) []entities.CoinPrice {
	byID := make(map[string]gjson.Result)
	payload.ForEach(func(key, value gjson.Result) bool {
		byID[key.String()] = value
		return true
	})

	rows := make([]entities.CoinPrice, 0, len(coinIDs))
	for _, id := range coinIDs {
		coin, ok := byID[id]
		if !ok {
			continue
		}
		rows = append(rows, entities.CoinPrice{
			ID:            id,
			Symbol:        entities.SymbolForCoin(id),
			PriceUSD:      upstream.OptFloat(coin.Get("usd")),
			MarketCap:     upstream.OptFloat(coin.Get("usd_market_cap")),
			Volume24h:     upstream.OptFloat(coin.Get("usd_24h_vol")),
			Change24hPct:  upstream.OptFloat(coin.Get("usd_24h_change")),
			LastUpdatedAt: upstream.OptInt(coin.Get("last_updated_at")),
		})
	}

	// Equal market caps order by id so the result does not depend on request order
	sort.SliceStable(rows, func(i, j int) bool {
		mi, mj := marketCap(rows[i]), marketCap(rows[j])
		if mi == mj {
			return rows[i].ID < rows[j].ID
		}
		return mi > mj
	})
	return rows
}

func marketCap(row entities.CoinPrice) float64 {
	if row.MarketCap == nil {
		return 0
	}
	return *row.MarketCap
}

// NormalizeGlobal extracts the aggregate numbers of a /global payload
func NormalizeGlobal(payload gjson.Result) entities.GlobalMarket {
	data := payload.Get("data")
	return entities.GlobalMarket{
		ActiveCryptocurrencies: upstream.OptInt(data.Get("active_cryptocurrencies")),
		Markets:                upstream.OptInt(data.Get("markets")),
		TotalMarketCapUSD:      upstream.OptFloat(data.Get("total_market_cap.usd")),
		TotalVolume24hUSD:      upstream.OptFloat(data.Get("total_volume.usd")),
		BTCDominancePct:        upstream.OptFloat(data.Get("market_cap_percentage.btc")),
		ETHDominancePct:        upstream.OptFloat(data.Get("market_cap_percentage.eth")),
		MarketCapChange24hPct:  upstream.OptFloat(data.Get("market_cap_change_percentage_24h_usd")),
	}
}

// NormalizeTrending extracts at most limit coins of a /search/trending payload
func NormalizeTrending(payload gjson.Result, limit int) []entities.TrendingCoin {
	coins := payload.Get("coins").Array()
	if limit >= 0 && len(coins) > limit {
		coins = coins[:limit]
	}

	trending := make([]entities.TrendingCoin, 0, len(coins))
	for _, entry := range coins {
		item := entry.Get("item")
		trending = append(trending, entities.TrendingCoin{
			ID:            upstream.OptString(item.Get("id")),
			Name:          upstream.OptString(item.Get("name")),
			Symbol:        upstream.OptString(item.Get("symbol")),
			MarketCapRank: upstream.OptInt(item.Get("market_cap_rank")),
			Thumb:         upstream.OptString(item.Get("thumb")),
			Score:         upstream.OptInt(item.Get("score")),
		})
	}
	return trending
}
