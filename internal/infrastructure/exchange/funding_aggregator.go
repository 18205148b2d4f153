package exchange

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

// ErrAllFundingSourcesFailed is returned when no exchange answered
var ErrAllFundingSourcesFailed = errors.New("all funding sources failed")

// FundingAggregator queries every funding source concurrently and merges
// their quotes per symbol. One source failing is tolerated.
type FundingAggregator struct {
	binance interfaces.FundingSource
	bybit   interfaces.FundingSource
}

// NewFundingAggregator builds an aggregator over the Binance and Bybit sources
func NewFundingAggregator(binance, bybit interfaces.FundingSource) *FundingAggregator {
	return &FundingAggregator{binance: binance, bybit: bybit}
}

type sourceResult struct {
	quotes []entities.FundingQuote
	err    error
}

// MergedFundingRates returns one row per requested symbol, in request order
func (a *FundingAggregator) MergedFundingRates(ctx context.Context, symbols []string) ([]entities.FundingRate, error) {
	if len(symbols) == 0 {
		symbols = entities.DefaultFundingSymbols
	}

	var binanceRes, bybitRes sourceResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		binanceRes = a.query(ctx, a.binance, symbols)
	}()
	go func() {
		defer wg.Done()
		bybitRes = a.query(ctx, a.bybit, symbols)
	}()
	wg.Wait()

	if binanceRes.err != nil && bybitRes.err != nil {
		logging.Error(ctx, "All funding sources failed", logging.Fields{
			"symbols":       symbols,
			"binance_error": binanceRes.err.Error(),
			"bybit_error":   bybitRes.err.Error(),
		})
		return nil, fmt.Errorf("%w: binance: %v, bybit: %v", ErrAllFundingSourcesFailed, binanceRes.err, bybitRes.err)
	}

	return MergeFunding(symbols, binanceRes.quotes, bybitRes.quotes), nil
}

func (a *FundingAggregator) query(ctx context.Context, source interfaces.FundingSource, symbols []string) sourceResult {
	start := time.Now()
	quotes, err := source.FundingRates(ctx, symbols)
	if err != nil {
		reason := determineFailureReason(err)
		metrics.RecordFundingSourceFailure(source.Name(), reason)
		logging.WarnWithError(ctx, "Funding source failed, continuing without it", err, logging.Fields{
			"source":      source.Name(),
			"reason":      reason,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return sourceResult{err: err}
	}

	logging.Debug(ctx, "Funding source answered", logging.Fields{
		"source":      source.Name(),
		"quotes":      len(quotes),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return sourceResult{quotes: quotes}
}

// MergeFunding builds the per-symbol rows. average_rate is the mean of the
// non-null rates, or null when neither exchange quoted one.
func MergeFunding(symbols []string, binance, bybit []entities.FundingQuote) []entities.FundingRate {
	rows := make([]entities.FundingRate, len(symbols))
	index := make(map[string]int, len(symbols))
	for i, symbol := range symbols {
		rows[i] = entities.FundingRate{Symbol: symbol}
		index[symbol] = i
	}

	for _, q := range binance {
		if i, ok := index[q.Symbol]; ok {
			funding := q.Funding
			rows[i].Binance = &funding
		}
	}
	for _, q := range bybit {
		if i, ok := index[q.Symbol]; ok {
			funding := q.Funding
			rows[i].Bybit = &funding
		}
	}

	for i := range rows {
		var sum float64
		var n int
		for _, quote := range []*entities.ExchangeFunding{rows[i].Binance, rows[i].Bybit} {
			if quote != nil && quote.FundingRate != nil {
				sum += *quote.FundingRate
				n++
			}
		}
		if n > 0 {
			avg := sum / float64(n)
			rows[i].AverageRate = &avg
		}
	}
	return rows
}

// determineFailureReason classifies a source error for the failure metric
func determineFailureReason(err error) string {
	if err == nil {
		return "unknown"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	if upstream.IsUpstreamFailure(err) {
		var connErr *upstream.ConnectivityError
		if errors.As(err, &connErr) {
			return "connection_error"
		}

		var upstreamErr *upstream.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.StatusCode >= 200 && upstreamErr.StatusCode <= 299 {
			return "malformed_payload"
		}
		return "http_error"
	}

	if errors.Is(err, upstream.ErrBudgetExhausted) {
		return "budget_exhausted"
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") {
		return "timeout"
	}
	if strings.Contains(errStr, "connection") {
		return "connection_error"
	}
	return "unknown"
}
