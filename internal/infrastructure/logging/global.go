package logging

import (
	"context"
)

// Package-level helpers that log through the global loggers.

func Debug(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Debug(ctx, message, fields)
}

func Info(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Info(ctx, message, fields)
}

func Warn(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Warn(ctx, message, fields)
}

func Error(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Error(ctx, message, fields)
}

func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().WarnWithError(ctx, message, err, fields)
}

func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().ErrorWithError(ctx, message, err, fields)
}

// HTTPRequest logs a completed inbound request
func HTTPRequest(ctx context.Context, method, path string, statusCode int, durationMs float64) {
	GetGlobalLoggers().HTTP.RequestCompleted(ctx, method, path, statusCode, durationMs)
}

// ExternalRequest logs a completed upstream call
func ExternalRequest(ctx context.Context, service, endpoint string, durationMs float64, statusCode int) {
	GetGlobalLoggers().ExternalAPI.RequestCompleted(ctx, service, endpoint, statusCode, durationMs)
}

// ExternalRequestFailed logs a failed upstream call
func ExternalRequestFailed(ctx context.Context, service, endpoint string, durationMs float64, statusCode int, err error) {
	GetGlobalLoggers().ExternalAPI.RequestFailed(ctx, service, endpoint, statusCode, err, durationMs)
}

// CacheOperation logs a cache lookup
func CacheOperation(ctx context.Context, operation, key string, hit bool) {
	cacheLogger := GetGlobalLoggers().Cache
	if hit {
		cacheLogger.Hit(ctx, key, operation)
	} else {
		cacheLogger.Miss(ctx, key, operation)
	}
}

func Cache() CacheLogger {
	return GetGlobalLoggers().Cache
}

func Business() BusinessLogger {
	return GetGlobalLoggers().Business
}

func HTTP() HTTPLogger {
	return GetGlobalLoggers().HTTP
}
