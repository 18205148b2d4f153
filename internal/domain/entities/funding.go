package entities

import "encoding/json"

// ExchangeFunding is the funding quote of one exchange for one symbol
type ExchangeFunding struct {
	FundingRate *float64 `json:"funding_rate"`
	// NextFundingTime is passed through as the exchange sent it (number or string)
	NextFundingTime json.RawMessage `json:"next_funding_time"`
}

// FundingRate merges the Binance and Bybit quotes of one perpetual symbol
type FundingRate struct {
	Symbol      string           `json:"symbol"`
	Binance     *ExchangeFunding `json:"binance"`
	Bybit       *ExchangeFunding `json:"bybit"`
	AverageRate *float64         `json:"average_rate"`
}

// FundingQuote is a single exchange row before merging
type FundingQuote struct {
	Symbol  string
	Funding ExchangeFunding
}
