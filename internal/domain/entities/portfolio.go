package entities

// PortfolioHolding is one configured position before pricing
type PortfolioHolding struct {
	Coin       string
	CoinID     string
	Quantity   float64
	AvgCostUSD float64
}

// PortfolioPosition is a priced position
type PortfolioPosition struct {
	Coin            string  `json:"coin"`
	Quantity        float64 `json:"quantity"`
	AvgCostUSD      float64 `json:"avg_cost_usd"`
	CurrentPriceUSD float64 `json:"current_price_usd"`
	CostBasisUSD    float64 `json:"cost_basis_usd"`
	MarketValueUSD  float64 `json:"market_value_usd"`
	PnLUSD          float64 `json:"pnl_usd"`
	PnLPct          float64 `json:"pnl_pct"`
	AllocationPct   float64 `json:"allocation_pct"`
}

// PortfolioSummary totals every position
type PortfolioSummary struct {
	TotalPositions int     `json:"total_positions"`
	TotalCostUSD   float64 `json:"total_cost_usd"`
	TotalValueUSD  float64 `json:"total_value_usd"`
	TotalPnLUSD    float64 `json:"total_pnl_usd"`
	TotalPnLPct    float64 `json:"total_pnl_pct"`
}

// Portfolio is the priced portfolio
type Portfolio struct {
	Positions  []PortfolioPosition `json:"positions"`
	Summary    PortfolioSummary    `json:"summary"`
	DataSource string              `json:"data_source"`
	IsMock     bool                `json:"is_mock"`
	UpdatedAt  string              `json:"updated_at"`
}

// PortfolioPositionView is a single position with the portfolio timestamp
type PortfolioPositionView struct {
	Position  PortfolioPosition `json:"position"`
	UpdatedAt string            `json:"updated_at"`
}
