package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/elvis-fintech/busyedge/internal/application/services"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// CreateAlertRequest is the body of POST /api/alerts
// @Description New price alert
type CreateAlertRequest struct {
	Symbol         string  `json:"symbol" example:"BTC"`
	TargetPriceUSD float64 `json:"target_price_usd" example:"70000"`
	Direction      string  `json:"direction,omitempty" example:"above" enums:"above,below"`
	Note           *string `json:"note,omitempty" example:"breakout"`
}

// ToInput converts the request to the service input
func (r CreateAlertRequest) ToInput() services.CreateAlertInput {
	return services.CreateAlertInput{
		Symbol:         r.Symbol,
		TargetPriceUSD: r.TargetPriceUSD,
		Direction:      entities.AlertDirection(strings.ToLower(strings.TrimSpace(r.Direction))),
		Note:           r.Note,
	}
}

// ParseIntParam parses an optional integer query parameter bounded by [lo, hi]
func ParseIntParam(name, raw string, def, lo, hi int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Field: name, Message: "must be an integer"}
	}
	if v < lo || v > hi {
		return 0, &services.ValidationError{Field: name, Message: fmt.Sprintf("must be between %d and %d", lo, hi)}
	}
	return v, nil
}

// ParseMinValueParam parses an optional non-negative float query parameter
func ParseMinValueParam(name, raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &services.ValidationError{Field: name, Message: "must be a number"}
	}
	if v < 0 {
		return 0, &services.ValidationError{Field: name, Message: "must be greater than or equal to 0"}
	}
	return v, nil
}
