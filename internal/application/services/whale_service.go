package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

// Whale thresholds in USD
const (
	DefaultWhaleMinValueUSD = 10000
	largeTransactionUSD     = 100000
)

var whaleTransactions = []entities.WhaleTransaction{
	{Hash: "0x1234...abcd", From: "0x742d35Cc6634C0532925a3b844Bc9e7595f", To: "0x5C985E89DDe482eFE97EA9fF0aB1C7Fe05eB", ValueETH: 125.5, ValueUSD: 312875, Timestamp: 1707878400, Type: "outflow"},
	{Hash: "0xabcd...1234", From: "0x8ba1f109551bD432803012645Ac136ddd64DBA72", To: "0x742d35Cc6634C0532925a3b844Bc9e7595f", ValueETH: 89.2, ValueUSD: 223000, Timestamp: 1707792000, Type: "inflow"},
	{Hash: "0x5678...efgh", From: "0x3f5CE5FBFe3E9af3971dD833Dc26FF900aF1a", To: "0x9abc...def0", ValueETH: 450.0, ValueUSD: 1125000, Timestamp: 1707705600, Type: "outflow"},
	{Hash: "0xefgh...5678", From: "0x28c6c06298d514Db089934071355E5743bf21d0", To: "0x1111...2222", ValueETH: 234.8, ValueUSD: 587000, Timestamp: 1707619200, Type: "outflow"},
}

var whaleWallets = []entities.WhaleWallet{
	{Address: "0x742d35Cc6634C0532925a3b844Bc9e7595f", Label: "Multi-sig Wallet A", TotalReceivedETH: 45820.5, TotalSentETH: 32100.2, LastActive: 1707878400},
	{Address: "0x9abc123456789def123456789abcdef123456", Label: "DeFi Protocol Treasury", TotalReceivedETH: 125000.0, TotalSentETH: 89000.0, LastActive: 1707792000},
}

// WhaleService serves a fixed on-chain whale dataset
type WhaleService struct {
	now func() time.Time
}

// NewWhaleService creates the service
func NewWhaleService() *WhaleService {
	return &WhaleService{now: time.Now}
}

// Transactions returns transfers worth at least minValueUSD, newest first
func (s *WhaleService) Transactions(ctx context.Context, minValueUSD float64) []entities.WhaleTransaction {
	out := make([]entities.WhaleTransaction, 0, len(whaleTransactions))
	for _, tx := range whaleTransactions {
		if tx.ValueUSD >= minValueUSD {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// ExchangeFlows returns the ETH flows per exchange
func (s *WhaleService) ExchangeFlows(ctx context.Context) map[string]entities.ExchangeFlow {
	return map[string]entities.ExchangeFlow{
		"binance":  {InflowETH: 15420.5, OutflowETH: 12350.2, NetETH: 3070.3},
		"coinbase": {InflowETH: 8920.1, OutflowETH: 11240.5, NetETH: -2320.4},
		"bybit":    {InflowETH: 6780.3, OutflowETH: 5890.1, NetETH: 890.2},
		"okx":      {InflowETH: 4230.0, OutflowETH: 5100.5, NetETH: -870.5},
		"kraken":   {InflowETH: 2150.8, OutflowETH: 1890.3, NetETH: 260.5},
	}
}

// Summary aggregates transactions and exchange flows
func (s *WhaleService) Summary(ctx context.Context) entities.WhaleSummary {
	txs := s.Transactions(ctx, DefaultWhaleMinValueUSD)
	flows := s.ExchangeFlows(ctx)

	var inflow, outflow float64
	for _, flow := range flows {
		switch {
		case flow.NetETH > 0:
			inflow += flow.NetETH
		case flow.NetETH < 0:
			outflow += math.Abs(flow.NetETH)
		}
	}

	large := 0
	for _, tx := range txs {
		if tx.ValueUSD >= largeTransactionUSD {
			large++
		}
	}

	return entities.WhaleSummary{
		WhaleTransactions24h:  len(txs),
		LargeTransactions100k: large,
		TotalInflowETH:        roundTo(inflow, 2),
		TotalOutflowETH:       roundTo(outflow, 2),
		NetFlowETH:            roundTo(inflow-outflow, 2),
		ExchangeFlows:         flows,
		DataSource:            entities.DataSourceMockOnchain,
		IsMock:                true,
		UpdatedAt:             utils.RFC3339UTC(s.now()),
	}
}

// Wallets returns the tracked whale wallets
func (s *WhaleService) Wallets(ctx context.Context) []entities.WhaleWallet {
	out := make([]entities.WhaleWallet, len(whaleWallets))
	copy(out, whaleWallets)
	return out
}
