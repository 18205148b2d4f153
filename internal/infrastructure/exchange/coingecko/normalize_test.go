package coingecko

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const simplePricePayload = `{
	"bitcoin": {"usd": 50000, "usd_market_cap": 1000000000, "usd_24h_vol": 2000, "usd_24h_change": 1.5, "last_updated_at": 1700000000},
	"ethereum": {"usd": 3000, "usd_market_cap": 400000000, "usd_24h_vol": 1000, "usd_24h_change": -0.5, "last_updated_at": 1700000001},
	"dogecoin": {"usd": 0.1}
}`

func TestNormalizeSimplePrices(t *testing.T) {
	rows := NormalizeSimplePrices(gjson.Parse(simplePricePayload), []string{"dogecoin", "ethereum", "solana", "bitcoin"})

	require.Len(t, rows, 3, "ids absent from the payload are skipped")
	assert.Equal(t, "bitcoin", rows[0].ID)
	assert.Equal(t, "BTC", rows[0].Symbol)
	assert.Equal(t, 50000.0, *rows[0].PriceUSD)
	assert.Equal(t, int64(1700000000), *rows[0].LastUpdatedAt)
	assert.Equal(t, "ethereum", rows[1].ID)

	doge := rows[2]
	assert.Equal(t, "dogecoin", doge.ID)
	assert.Equal(t, 0.1, *doge.PriceUSD)
	assert.Nil(t, doge.MarketCap, "missing market cap stays null")
	assert.Nil(t, doge.Volume24h)
	assert.Nil(t, doge.Change24hPct)
	assert.Nil(t, doge.LastUpdatedAt)
}

func TestNormalizeSimplePrices_NullFieldsSerializeAsNull(t *testing.T) {
	rows := NormalizeSimplePrices(gjson.Parse(`{"cardano":{"usd":null}}`), []string{"cardano"})

	require.Len(t, rows, 1)
	encoded, err := json.Marshal(rows[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"cardano","symbol":"CARDANO","price_usd":null,"market_cap":null,"volume_24h":null,"change_24h_pct":null,"last_updated_at":null}`, string(encoded))
}

func TestNormalizeSimplePrices_EqualMarketCapsOrderByID(t *testing.T) {
	payload := gjson.Parse(`{"a":{"usd":1},"b":{"usd":2},"c":{"usd":3,"usd_market_cap":5}}`)

	rows := NormalizeSimplePrices(payload, []string{"b", "a", "c"})

	assert.Equal(t, "c", rows[0].ID)
	assert.Equal(t, "a", rows[1].ID)
	assert.Equal(t, "b", rows[2].ID)
}

func TestNormalizeSimplePrices_IndependentOfRequestOrder(t *testing.T) {
	payload := gjson.Parse(`{"aaa":{"usd":1},"bbb":{"usd":2}}`)

	forward := NormalizeSimplePrices(payload, []string{"aaa", "bbb"})
	reversed := NormalizeSimplePrices(payload, []string{"bbb", "aaa"})

	require.Len(t, forward, 2)
	assert.Equal(t, forward, reversed)
	assert.Equal(t, "aaa", forward[0].ID)
	assert.Equal(t, "bbb", forward[1].ID)
}

func TestNormalizeSimplePrices_Idempotent(t *testing.T) {
	payload := gjson.Parse(simplePricePayload)
	ids := []string{"bitcoin", "ethereum", "dogecoin"}

	assert.Equal(t, NormalizeSimplePrices(payload, ids), NormalizeSimplePrices(payload, ids))
}

func TestNormalizeGlobal(t *testing.T) {
	payload := gjson.Parse(`{"data":{
		"active_cryptocurrencies": 12000,
		"markets": 900,
		"total_market_cap": {"usd": 2.5e12, "eur": 2.3e12},
		"total_volume": {"usd": 9.1e10},
		"market_cap_percentage": {"btc": 52.1, "eth": 17.3},
		"market_cap_change_percentage_24h_usd": -1.2
	}}`)

	global := NormalizeGlobal(payload)

	assert.Equal(t, int64(12000), *global.ActiveCryptocurrencies)
	assert.Equal(t, int64(900), *global.Markets)
	assert.Equal(t, 2.5e12, *global.TotalMarketCapUSD)
	assert.Equal(t, 9.1e10, *global.TotalVolume24hUSD)
	assert.Equal(t, 52.1, *global.BTCDominancePct)
	assert.Equal(t, 17.3, *global.ETHDominancePct)
	assert.Equal(t, -1.2, *global.MarketCapChange24hPct)
}

func TestNormalizeGlobal_MissingData(t *testing.T) {
	global := NormalizeGlobal(gjson.Parse(`{}`))

	assert.Nil(t, global.ActiveCryptocurrencies)
	assert.Nil(t, global.TotalMarketCapUSD)
}

func TestNormalizeTrending(t *testing.T) {
	payload := gjson.Parse(`{"coins":[
		{"item":{"id":"pepe","name":"Pepe","symbol":"PEPE","market_cap_rank":30,"thumb":"https://x/pepe.png","score":0}},
		{"item":{"id":"wif","name":"dogwifhat","symbol":"WIF","score":1}},
		{"item":{"id":"bonk","name":"Bonk","symbol":"BONK","score":2}}
	]}`)

	trending := NormalizeTrending(payload, 2)

	require.Len(t, trending, 2)
	assert.Equal(t, "pepe", *trending[0].ID)
	assert.Equal(t, int64(30), *trending[0].MarketCapRank)
	assert.Equal(t, int64(0), *trending[0].Score)
	assert.Nil(t, trending[1].MarketCapRank)
	assert.Nil(t, trending[1].Thumb)

	assert.Empty(t, NormalizeTrending(gjson.Parse(`{}`), 5))
}
