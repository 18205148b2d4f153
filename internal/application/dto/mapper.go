package dto

import (
	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// Wrap puts a payload in the data envelope
func Wrap[T any](data T) DataResponse[T] {
	return DataResponse[T]{Data: data}
}

// ToCompositeResponse maps a served result to its envelope. Failed results are handled
// by the caller before mapping.
func ToCompositeResponse[T any](result resilience.Result[T], liveSource, cacheSource string) CompositeResponse[T] {
	resp := CompositeResponse[T]{
		Data:       result.Value,
		IsStale:    result.IsStale(),
		DataSource: liveSource,
	}
	if result.IsStale() {
		resp.DataSource = cacheSource
		resp.FallbackReason = reasonOf(result)
	}
	return resp
}

// ToFearGreedCurrent flattens the latest reading and its staleness
func ToFearGreedCurrent(result resilience.Result[entities.FearGreedReading]) FearGreedCurrent {
	resp := FearGreedCurrent{
		FearGreedReading: result.Value,
		DataSource:       SourceAlternativeMe,
	}
	if result.IsStale() {
		resp.IsStale = true
		resp.DataSource = SourceAlternativeMeCache
		resp.FallbackReason = reasonOf(result)
	}
	return resp
}

func reasonOf[T any](result resilience.Result[T]) *string {
	reason := result.Reason
	return &reason
}
