package bybit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

const (
	// ServiceName is the display name used in upstream errors
	ServiceName = "Bybit"
	// DefaultBaseURL is the v5 API root
	DefaultBaseURL = "https://api.bybit.com"
	// SourceName identifies the exchange in merged funding rows and metrics
	SourceName = "bybit"

	tickersEndpoint = "/v5/market/tickers"
)

// Client reads linear perpetual funding rates from Bybit
type Client struct {
	api *upstream.Client
}

// NewClient wraps an upstream client
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// Name returns the exchange identifier
func (c *Client) Name() string {
	return SourceName
}

// FundingRates fetches the linear tickers and keeps the requested symbols
func (c *Client) FundingRates(ctx context.Context, symbols []string) ([]entities.FundingQuote, error) {
	params := url.Values{}
	params.Set("category", "linear")

	payload, err := c.api.GetJSON(ctx, tickersEndpoint, params)
	if err != nil {
		return nil, err
	}
	if !payload.IsObject() {
		return nil, upstream.NewPayloadError(ServiceName, "returned an unexpected tickers payload")
	}
	if code := payload.Get("retCode"); code.Exists() && code.Int() != 0 {
		return nil, upstream.NewPayloadError(ServiceName,
			fmt.Sprintf("returned retCode %d: %s", code.Int(), payload.Get("retMsg").String()))
	}
	return NormalizeTickers(payload, symbols), nil
}

// NormalizeTickers reads result.list and keeps rows whose symbol was requested.
// A missing or non-numeric fundingRate stays null.
func NormalizeTickers(payload gjson.Result, symbols []string) []entities.FundingQuote {
	wanted := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		wanted[symbol] = struct{}{}
	}

	quotes := make([]entities.FundingQuote, 0, len(symbols))
	payload.Get("result.list").ForEach(func(_, item gjson.Result) bool {
		symbol := item.Get("symbol").String()
		if _, ok := wanted[symbol]; !ok {
			return true
		}
		quotes = append(quotes, entities.FundingQuote{
			Symbol: symbol,
			Funding: entities.ExchangeFunding{
				FundingRate:     upstream.OptFloat(item.Get("fundingRate")),
				NextFundingTime: upstream.RawValue(item.Get("nextFundingTime")),
			},
		})
		return true
	})
	return quotes
}
