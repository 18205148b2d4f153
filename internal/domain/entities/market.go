package entities

// CoinPrice is one row of the simple prices resource. Numeric fields are nil when
// CoinGecko omitted them.
type CoinPrice struct {
	ID            string   `json:"id"`
	Symbol        string   `json:"symbol"`
	PriceUSD      *float64 `json:"price_usd"`
	MarketCap     *float64 `json:"market_cap"`
	Volume24h     *float64 `json:"volume_24h"`
	Change24hPct  *float64 `json:"change_24h_pct"`
	LastUpdatedAt *int64   `json:"last_updated_at"`
}

// GlobalMarket holds the aggregate market numbers of the overview
type GlobalMarket struct {
	ActiveCryptocurrencies *int64   `json:"active_cryptocurrencies"`
	Markets                *int64   `json:"markets"`
	TotalMarketCapUSD      *float64 `json:"total_market_cap_usd"`
	TotalVolume24hUSD      *float64 `json:"total_volume_24h_usd"`
	BTCDominancePct        *float64 `json:"btc_dominance_pct"`
	ETHDominancePct        *float64 `json:"eth_dominance_pct"`
	MarketCapChange24hPct  *float64 `json:"market_cap_change_24h_pct"`
}

// TrendingCoin is one entry of CoinGecko's trending search list
type TrendingCoin struct {
	ID            *string `json:"id"`
	Name          *string `json:"name"`
	Symbol        *string `json:"symbol"`
	MarketCapRank *int64  `json:"market_cap_rank"`
	Thumb         *string `json:"thumb"`
	Score         *int64  `json:"score"`
}

// MarketOverview is the global snapshot plus trending coins
type MarketOverview struct {
	Global   GlobalMarket   `json:"global"`
	Trending []TrendingCoin `json:"trending"`
}

// Dashboard is the composed market view
type Dashboard struct {
	GeneratedAt  string         `json:"generated_at"`
	Prices       []CoinPrice    `json:"prices"`
	Overview     MarketOverview `json:"overview"`
	Funding      []FundingRate  `json:"funding"`
	IsStale      bool           `json:"is_stale"`
	DataSource   string         `json:"data_source"`
	StaleReasons []string       `json:"stale_reasons"`
}

// Dashboard data sources
const (
	DataSourceLive         = "live"
	DataSourcePartialCache = "partial_cache"
)
