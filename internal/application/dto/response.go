package dto

import (
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// Data sources of single-resource responses
const (
	SourceCoinGecko          = "coingecko"
	SourceCoinGeckoCache     = "coingecko_cache"
	SourceAlternativeMe      = "alternative_me"
	SourceAlternativeMeCache = "alternative_me_cache"
)

// APIVersion is reported by /api/status
const APIVersion = "0.1.0"

// DataResponse wraps every successful payload
// @Description Standard success envelope
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// CompositeResponse is a resource that may have been served from cache
// @Description Resource envelope with staleness information
type CompositeResponse[T any] struct {
	Data           T       `json:"data"`
	IsStale        bool    `json:"is_stale" example:"false"`
	DataSource     string  `json:"data_source" example:"coingecko" enums:"coingecko,coingecko_cache,alternative_me,alternative_me_cache"`
	FallbackReason *string `json:"fallback_reason,omitempty" example:"CoinGecko API error: 429"`
}

// FearGreedCurrent is the latest index value with its staleness flattened in
// @Description Latest Fear & Greed value
type FearGreedCurrent struct {
	entities.FearGreedReading
	IsStale        bool    `json:"is_stale" example:"false"`
	DataSource     string  `json:"data_source" example:"alternative_me" enums:"alternative_me,alternative_me_cache"`
	FallbackReason *string `json:"fallback_reason,omitempty"`
}

// DeleteAlertResult confirms a deletion
type DeleteAlertResult struct {
	ID      string `json:"id" example:"alt_3f2a9c1d0e"`
	Deleted bool   `json:"deleted" example:"true"`
}

// ErrorResponse represents a standard error response for endpoints
// @Description Standard error response for endpoints
type ErrorResponse struct {
	Error   string `json:"error" example:"UPSTREAM_UNAVAILABLE" validate:"required"`             // Machine readable error
	Message string `json:"message,omitempty" example:"live prices unavailable and no cache"` // Detailed error description
	Code    string `json:"code,omitempty" example:"502"`                                     // HTTP status code
}

// HealthResponse represents the health check response with service status
// @Description Health check response with service status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy" validate:"required" enums:"healthy,ready,unhealthy"`
	Timestamp time.Time         `json:"timestamp" example:"2024-06-10T08:00:00Z" validate:"required"`
	Services  map[string]string `json:"services,omitempty"`
}

// StatusResponse is the body of /api/status
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// WelcomeResponse is the body of /
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to BusyEdge API"`
}

// NewErrorResponse creates an error response with the status code as string
func NewErrorResponse(errorCode, message, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:   errorCode,
		Message: message,
		Code:    code,
	}
}

// NewHealthResponse creates a health check response
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
