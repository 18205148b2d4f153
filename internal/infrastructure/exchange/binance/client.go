package binance

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

const (
	// ServiceName is the display name used in upstream errors
	ServiceName = "Binance"
	// DefaultBaseURL is the USD-M futures API root
	DefaultBaseURL = "https://fapi.binance.com"
	// SourceName identifies the exchange in merged funding rows and metrics
	SourceName = "binance"

	premiumIndexEndpoint = "/fapi/v1/premiumIndex"
)

// Client reads perpetual funding rates from Binance USD-M futures
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

// FundingRates fetches the premium index of every symbol and keeps the requested ones
func (c *Client) FundingRates(ctx context.Context, symbols []string) ([]entities.FundingQuote, error) {
	payload, err := c.api.GetJSON(ctx, premiumIndexEndpoint, nil)
	if err != nil {
		return nil, err
	}
	if !payload.IsArray() && !payload.IsObject() {
		return nil, upstream.NewPayloadError(ServiceName, "returned an unexpected premiumIndex payload")
	}
	return NormalizePremiumIndex(payload, symbols), nil
}

// NormalizePremiumIndex keeps rows whose symbol was requested. A single object is
// treated as a one-row list. A missing lastFundingRate reads as 0.
func NormalizePremiumIndex(payload gjson.Result, symbols []string) []entities.FundingQuote {
	wanted := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		wanted[symbol] = struct{}{}
	}

	items := []gjson.Result{payload}
	if payload.IsArray() {
		items = payload.Array()
	}

	quotes := make([]entities.FundingQuote, 0, len(symbols))
	for _, item := range items {
		symbol := item.Get("symbol").String()
		if _, ok := wanted[symbol]; !ok {
			continue
		}

		rate := upstream.OptFloat(item.Get("lastFundingRate"))
		if rate == nil {
			zero := 0.0
			rate = &zero
		}

		quotes = append(quotes, entities.FundingQuote{
			Symbol: symbol,
			Funding: entities.ExchangeFunding{
				FundingRate:     rate,
				NextFundingTime: upstream.RawValue(item.Get("nextFundingTime")),
			},
		})
	}
	return quotes
}
