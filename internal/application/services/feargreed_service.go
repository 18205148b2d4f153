package services

import (
	"context"
	"strconv"

	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
)

// FearGreedService resolves the Fear & Greed index with stale fallback
type FearGreedService struct {
	provider interfaces.FearGreedProvider
	current  *resilience.Resolver[entities.FearGreedReading]
	history  *resilience.Resolver[[]entities.FearGreedPoint]
}

// NewFearGreedService wires the alternative.me provider to its caches
func NewFearGreedService(provider interfaces.FearGreedProvider, current resilience.Cache[entities.FearGreedReading], history resilience.Cache[[]entities.FearGreedPoint]) *FearGreedService {
	return &FearGreedService{
		provider: provider,
		current:  resilience.NewResolver(ResourceFearGreedCurrent, current),
		history:  resilience.NewResolver(ResourceFearGreedHistory, history),
	}
}

// ResolveFearGreedCurrent returns the latest reading
func (s *FearGreedService) ResolveFearGreedCurrent(ctx context.Context) resilience.Result[entities.FearGreedReading] {
	return s.current.Resolve(ctx, fearGreedCurrentKey, s.provider.Current)
}

// ResolveFearGreedHistory returns up to days readings, newest first. Entries are cached per days.
func (s *FearGreedService) ResolveFearGreedHistory(ctx context.Context, days int) resilience.Result[[]entities.FearGreedPoint] {
	return s.history.Resolve(ctx, strconv.Itoa(days), func(ctx context.Context) ([]entities.FearGreedPoint, error) {
		return s.provider.History(ctx, days)
	})
}
