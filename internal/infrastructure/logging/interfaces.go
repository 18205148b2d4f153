package logging

import (
	"context"
)

// Logger is the structured logging interface used across the service
type Logger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)

	InfoWithError(ctx context.Context, message string, err error, fields Fields)
	WarnWithError(ctx context.Context, message string, err error, fields Fields)
	ErrorWithError(ctx context.Context, message string, err error, fields Fields)

	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

// DomainLogger is a Logger tagged with a domain
type DomainLogger interface {
	Logger
	Domain() string
}

// HTTPLogger logs inbound HTTP traffic
type HTTPLogger interface {
	DomainLogger

	RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string)
	RequestCompleted(ctx context.Context, method, path string, statusCode int, duration float64)
}

// ExternalAPILogger logs upstream calls
type ExternalAPILogger interface {
	DomainLogger

	RequestCompleted(ctx context.Context, service, endpoint string, statusCode int, duration float64)
	RequestFailed(ctx context.Context, service, endpoint string, statusCode int, err error, duration float64)
}

// CacheLogger logs freshness cache activity
type CacheLogger interface {
	DomainLogger

	Hit(ctx context.Context, key string, operation string)
	Miss(ctx context.Context, key string, operation string)
	Set(ctx context.Context, key string, ttl float64)
	CacheError(ctx context.Context, operation, key string, err error)
}

// BusinessLogger logs resource resolution outcomes
type BusinessLogger interface {
	DomainLogger

	ResourceServed(ctx context.Context, resource, source string, stale bool)
	StaleFallback(ctx context.Context, resource string, cause error)
	ResourceUnavailable(ctx context.Context, resource string, err error)
	ValidationFailed(ctx context.Context, input string, reason string)
}
