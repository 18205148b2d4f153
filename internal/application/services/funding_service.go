package services

import (
	"context"
	"strings"

	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
)

// FundingService resolves merged funding rates, falling back to the last merge
// when every exchange is down
type FundingService struct {
	provider       interfaces.FundingProvider
	resolver       *resilience.Resolver[[]entities.FundingRate]
	defaultSymbols []string
}

// NewFundingService wires the funding aggregator to its cache
func NewFundingService(provider interfaces.FundingProvider, c resilience.Cache[[]entities.FundingRate], defaultSymbols []string) *FundingService {
	if len(defaultSymbols) == 0 {
		defaultSymbols = entities.DefaultFundingSymbols
	}
	return &FundingService{
		provider:       provider,
		resolver:       resilience.NewResolver(ResourceFunding, c),
		defaultSymbols: defaultSymbols,
	}
}

// SymbolsOrDefault normalizes requested symbols, substituting the defaults when none remain
func (s *FundingService) SymbolsOrDefault(symbols []string) []string {
	normalized := entities.NormalizeList(symbols)
	if len(normalized) == 0 {
		return s.defaultSymbols
	}
	return normalized
}

// ResolveFunding returns merged funding rates with fresh-cache and stale fallback
func (s *FundingService) ResolveFunding(ctx context.Context, symbols []string) resilience.Result[[]entities.FundingRate] {
	targets := s.SymbolsOrDefault(symbols)
	return s.resolver.Resolve(ctx, strings.Join(targets, ","), func(ctx context.Context) ([]entities.FundingRate, error) {
		return s.provider.MergedFundingRates(ctx, targets)
	})
}
