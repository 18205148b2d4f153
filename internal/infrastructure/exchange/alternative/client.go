package alternative

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

const (
	// ServiceName is the display name used in upstream errors
	ServiceName = "Fear & Greed"
	// DefaultBaseURL is the alternative.me index endpoint
	DefaultBaseURL = "https://api.alternative.me/fng"
)

// Client reads the alternative.me Fear & Greed index
type Client struct {
	api *upstream.Client
}

// NewClient wraps an upstream client
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// Current fetches the latest reading
func (c *Client) Current(ctx context.Context) (entities.FearGreedReading, error) {
	payload, err := c.api.GetJSON(ctx, "/", nil)
	if err != nil {
		return entities.FearGreedReading{}, err
	}
	return NormalizeCurrent(payload)
}

// History fetches up to min(days, 100) daily readings, newest first
func (c *Client) History(ctx context.Context, days int) ([]entities.FearGreedPoint, error) {
	limit := HistoryLimit(days)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	payload, err := c.api.GetJSON(ctx, "/", params)
	if err != nil {
		return nil, err
	}
	return NormalizeHistory(payload, limit)
}

// HistoryLimit clamps days to what the API serves
func HistoryLimit(days int) int {
	if days > entities.MaxFearGreedHistoryDays {
		return entities.MaxFearGreedHistoryDays
	}
	if days < 1 {
		return 1
	}
	return days
}

type reading struct {
	value          int
	classification string
	timestamp      int64
}

func parseReading(item gjson.Result) (reading, error) {
	value := upstream.OptInt(item.Get("value"))
	timestamp := upstream.OptInt(item.Get("timestamp"))
	if value == nil || timestamp == nil {
		return reading{}, upstream.NewPayloadError(ServiceName, "returned an entry without value or timestamp")
	}
	return reading{
		value:          int(*value),
		classification: item.Get("value_classification").String(),
		timestamp:      *timestamp,
	}, nil
}

// NormalizeCurrent extracts the first entry of the data array
func NormalizeCurrent(payload gjson.Result) (entities.FearGreedReading, error) {
	data := payload.Get("data").Array()
	if len(data) == 0 {
		return entities.FearGreedReading{}, upstream.NewPayloadError(ServiceName, "returned no data")
	}

	r, err := parseReading(data[0])
	if err != nil {
		return entities.FearGreedReading{}, err
	}
	return entities.FearGreedReading{
		Value:               r.value,
		ValueClassification: r.classification,
		Timestamp:           r.timestamp,
		TimeUpdated:         utils.FormatUnixUTC(r.timestamp),
	}, nil
}

// NormalizeHistory extracts at most limit entries in the order returned
func NormalizeHistory(payload gjson.Result, limit int) ([]entities.FearGreedPoint, error) {
	data := payload.Get("data").Array()
	if len(data) > limit {
		data = data[:limit]
	}

	history := make([]entities.FearGreedPoint, 0, len(data))
	for _, item := range data {
		r, err := parseReading(item)
		if err != nil {
			return nil, err
		}
		history = append(history, entities.FearGreedPoint{
			Value:               r.value,
			ValueClassification: r.classification,
			Timestamp:           r.timestamp,
			Date:                utils.FormatUnixDate(r.timestamp),
		})
	}
	return history, nil
}
