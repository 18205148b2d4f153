package logging

import (
	"context"
)

// BaseDomainLogger adds a domain field to every entry
type BaseDomainLogger struct {
	Logger
	domain string
}

// Domain returns the logger domain
func (dl *BaseDomainLogger) Domain() string {
	return dl.domain
}

func (dl *BaseDomainLogger) withDomain(fields Fields) Fields {
	tagged := make(Fields, len(fields)+1)
	for k, v := range fields {
		tagged[k] = v
	}
	tagged[FieldDomain] = dl.domain
	return tagged
}

func (dl *BaseDomainLogger) logWithDomain(ctx context.Context, level LogLevel, message string, fields Fields) {
	fields = dl.withDomain(fields)

	switch level {
	case LevelDebug:
		dl.Logger.Debug(ctx, message, fields)
	case LevelWarn:
		dl.Logger.Warn(ctx, message, fields)
	case LevelError:
		dl.Logger.Error(ctx, message, fields)
	default:
		dl.Logger.Info(ctx, message, fields)
	}
}

func (dl *BaseDomainLogger) Debug(ctx context.Context, message string, fields Fields) {
	dl.logWithDomain(ctx, LevelDebug, message, fields)
}

func (dl *BaseDomainLogger) Info(ctx context.Context, message string, fields Fields) {
	dl.logWithDomain(ctx, LevelInfo, message, fields)
}

func (dl *BaseDomainLogger) Warn(ctx context.Context, message string, fields Fields) {
	dl.logWithDomain(ctx, LevelWarn, message, fields)
}

func (dl *BaseDomainLogger) Error(ctx context.Context, message string, fields Fields) {
	dl.logWithDomain(ctx, LevelError, message, fields)
}

func (dl *BaseDomainLogger) WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	dl.Logger.WarnWithError(ctx, message, err, dl.withDomain(fields))
}

func (dl *BaseDomainLogger) ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	dl.Logger.ErrorWithError(ctx, message, err, dl.withDomain(fields))
}

// levelForStatus maps an HTTP status to a log level
func levelForStatus(statusCode int) LogLevel {
	switch {
	case statusCode >= 500:
		return LevelError
	case statusCode >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// HTTPDomainLogger logs inbound HTTP traffic
type HTTPDomainLogger struct {
	*BaseDomainLogger
}

// NewHTTPLogger creates an HTTP logger
func NewHTTPLogger(baseLogger Logger) HTTPLogger {
	return &HTTPDomainLogger{
		BaseDomainLogger: &BaseDomainLogger{Logger: baseLogger, domain: "http"},
	}
}

func (hl *HTTPDomainLogger) RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string) {
	fields := NewFieldBuilder().
		WithHTTPInfo(method, path, 0).
		WithUserAgent(userAgent).
		WithRemoteIP(remoteIP).
		Build()

	hl.Debug(ctx, "HTTP request received", fields)
}

func (hl *HTTPDomainLogger) RequestCompleted(ctx context.Context, method, path string, statusCode int, duration float64) {
	fields := NewFieldBuilder().
		WithHTTPInfo(method, path, statusCode).
		WithCustomField(FieldDuration, duration).
		Build()

	hl.logWithDomain(ctx, levelForStatus(statusCode), "HTTP request completed", fields)
}

// ExternalAPIDomainLogger logs upstream calls
type ExternalAPIDomainLogger struct {
	*BaseDomainLogger
}

// NewExternalAPILogger creates an upstream call logger
func NewExternalAPILogger(baseLogger Logger) ExternalAPILogger {
	return &ExternalAPIDomainLogger{
		BaseDomainLogger: &BaseDomainLogger{Logger: baseLogger, domain: "external_api"},
	}
}

func (el *ExternalAPIDomainLogger) RequestCompleted(ctx context.Context, service, endpoint string, statusCode int, duration float64) {
	fields := NewFieldBuilder().
		WithExternalAPI(service, endpoint, statusCode, duration).
		Build()

	el.logWithDomain(ctx, levelForStatus(statusCode), "External API request completed", fields)
}

func (el *ExternalAPIDomainLogger) RequestFailed(ctx context.Context, service, endpoint string, statusCode int, err error, duration float64) {
	fields := NewFieldBuilder().
		WithExternalAPI(service, endpoint, statusCode, duration).
		Build()

	el.WarnWithError(ctx, "External API request failed", err, fields)
}

// CacheDomainLogger logs cache activity
type CacheDomainLogger struct {
	*BaseDomainLogger
}

// NewCacheLogger creates a cache logger
func NewCacheLogger(baseLogger Logger) CacheLogger {
	return &CacheDomainLogger{
		BaseDomainLogger: &BaseDomainLogger{Logger: baseLogger, domain: "cache"},
	}
}

func (cl *CacheDomainLogger) Hit(ctx context.Context, key string, operation string) {
	cl.Debug(ctx, "Cache hit", NewFieldBuilder().WithCache(operation, key, true).Build())
}

func (cl *CacheDomainLogger) Miss(ctx context.Context, key string, operation string) {
	cl.Debug(ctx, "Cache miss", NewFieldBuilder().WithCache(operation, key, false).Build())
}

func (cl *CacheDomainLogger) Set(ctx context.Context, key string, ttl float64) {
	fields := NewFieldBuilder().
		WithCustomField(FieldCacheOperation, CacheOpSet).
		WithCustomField(FieldCacheKey, key).
		WithCustomField(FieldCacheTTL, ttl).
		Build()

	cl.Debug(ctx, "Cache entry stored", fields)
}

func (cl *CacheDomainLogger) CacheError(ctx context.Context, operation, key string, err error) {
	fields := NewFieldBuilder().
		WithCustomField(FieldCacheOperation, operation).
		WithCustomField(FieldCacheKey, key).
		Build()

	cl.WarnWithError(ctx, "Cache operation failed", err, fields)
}

// BusinessDomainLogger logs resource resolution
type BusinessDomainLogger struct {
	*BaseDomainLogger
}

// NewBusinessLogger creates a business logger
func NewBusinessLogger(baseLogger Logger) BusinessLogger {
	return &BusinessDomainLogger{
		BaseDomainLogger: &BaseDomainLogger{Logger: baseLogger, domain: "business"},
	}
}

func (bl *BusinessDomainLogger) ResourceServed(ctx context.Context, resource, source string, stale bool) {
	bl.Debug(ctx, "Resource served", NewFieldBuilder().WithResource(resource, source, stale).Build())
}

func (bl *BusinessDomainLogger) StaleFallback(ctx context.Context, resource string, cause error) {
	fields := NewFieldBuilder().
		WithResource(resource, "cache", true).
		Build()

	bl.WarnWithError(ctx, "Live fetch failed, serving cached data", cause, fields)
}

func (bl *BusinessDomainLogger) ResourceUnavailable(ctx context.Context, resource string, err error) {
	bl.ErrorWithError(ctx, "Resource unavailable and no cache to fall back on", err, Fields{
		FieldResource: resource,
	})
}

func (bl *BusinessDomainLogger) ValidationFailed(ctx context.Context, input string, reason string) {
	bl.Warn(ctx, "Input validation failed", Fields{
		"input":  input,
		"reason": reason,
	})
}
