package services

import (
	"context"
	"sync"
	"time"

	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

// Stale reasons reported by the dashboard
const (
	StaleReasonPrices             = "prices: coingecko_cache"
	StaleReasonOverview           = "overview: coingecko_cache"
	StaleReasonFundingCache       = "funding: exchange_cache"
	StaleReasonFundingUnavailable = "funding: unavailable"
)

// CompositionError is a dashboard failure that cannot be degraded
type CompositionError struct {
	Resource string
	Detail   string
	Err      error
}

func (e *CompositionError) Error() string {
	return e.Detail
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

// PriceResolver resolves the prices resource
type PriceResolver interface {
	ResolvePrices(ctx context.Context, coinIDs []string) resilience.Result[[]entities.CoinPrice]
}

// OverviewResolver resolves the market overview resource
type OverviewResolver interface {
	ResolveOverview(ctx context.Context) resilience.Result[entities.MarketOverview]
}

// FundingResolver resolves merged funding rates
type FundingResolver interface {
	ResolveFunding(ctx context.Context, symbols []string) resilience.Result[[]entities.FundingRate]
}

// DashboardService composes prices, overview and funding into one response
type DashboardService struct {
	prices   PriceResolver
	overview OverviewResolver
	funding  FundingResolver
	now      func() time.Time
}

// NewDashboardService creates the composer
func NewDashboardService(prices PriceResolver, overview OverviewResolver, funding FundingResolver) *DashboardService {
	return &DashboardService{
		prices:   prices,
		overview: overview,
		funding:  funding,
		now:      time.Now,
	}
}

// ComposeDashboard fetches the three resources concurrently and waits for all of
// them. Prices and overview are required; funding degrades to an empty list.
func (s *DashboardService) ComposeDashboard(ctx context.Context, coinIDs, symbols []string) (*entities.Dashboard, error) {
	var (
		wg       sync.WaitGroup
		prices   resilience.Result[[]entities.CoinPrice]
		overview resilience.Result[entities.MarketOverview]
		funding  resilience.Result[[]entities.FundingRate]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		prices = s.prices.ResolvePrices(ctx, coinIDs)
	}()
	go func() {
		defer wg.Done()
		overview = s.overview.ResolveOverview(ctx)
	}()
	go func() {
		defer wg.Done()
		funding = s.funding.ResolveFunding(ctx, symbols)
	}()
	wg.Wait()

	if prices.Failed() {
		return nil, &CompositionError{
			Resource: ResourcePrices,
			Detail:   "live prices unavailable and no cache",
			Err:      prices.Err,
		}
	}
	if overview.Failed() {
		return nil, &CompositionError{
			Resource: ResourceOverview,
			Detail:   "market overview unavailable and no cache",
			Err:      overview.Err,
		}
	}

	reasons := []string{}
	if prices.IsStale() {
		reasons = append(reasons, StaleReasonPrices)
	}
	if overview.IsStale() {
		reasons = append(reasons, StaleReasonOverview)
	}

	fundingRows := funding.Value
	switch {
	case funding.Failed():
		fundingRows = []entities.FundingRate{}
		reasons = append(reasons, StaleReasonFundingUnavailable)
	case funding.IsStale():
		reasons = append(reasons, StaleReasonFundingCache)
	}

	dataSource := entities.DataSourceLive
	if len(reasons) > 0 {
		dataSource = entities.DataSourcePartialCache
		logging.Warn(ctx, "Dashboard composed from partial cache", logging.Fields{
			"stale_reasons": reasons,
		})
	}
	metrics.RecordDashboardComposition(dataSource)

	return &entities.Dashboard{
		GeneratedAt:  utils.RFC3339UTC(s.now()),
		Prices:       prices.Value,
		Overview:     overview.Value,
		Funding:      fundingRows,
		IsStale:      len(reasons) > 0,
		DataSource:   dataSource,
		StaleReasons: reasons,
	}, nil
}
