package ratelimit

import (
	"context"
	"time"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

// BudgetConfig describes the request budget of one upstream
type BudgetConfig struct {
	Enabled      bool
	Capacity     int
	RefillRate   int
	RefillPeriod time.Duration
}

// Budget guards calls to one upstream API. A nil *Budget allows everything.
type Budget struct {
	service string
	bucket  *TokenBucket
}

// NewBudget creates a budget for service, or nil when the config disables it
func NewBudget(service string, config BudgetConfig) *Budget {
	if !config.Enabled || config.Capacity <= 0 || config.RefillRate <= 0 {
		return nil
	}

	logging.Info(context.Background(), "Upstream budget initialized", logging.Fields{
		logging.FieldExternalService: service,
		"capacity":                   config.Capacity,
		"refill_rate":                config.RefillRate,
		"refill_period":              config.RefillPeriod.String(),
	})

	return &Budget{
		service: service,
		bucket:  NewTokenBucket(config.Capacity, config.RefillRate, config.RefillPeriod),
	}
}

// Allow reports whether one more upstream request may be sent now
func (b *Budget) Allow() bool {
	if b == nil {
		return true
	}

	allowed := b.bucket.Allow()
	metrics.RecordUpstreamBudget(b.service, allowed)
	metrics.UpdateUpstreamBudgetTokens(b.service, float64(b.bucket.Tokens()))
	return allowed
}

// Remaining returns the number of requests currently available
func (b *Budget) Remaining() int {
	if b == nil {
		return -1
	}
	return b.bucket.Tokens()
}
