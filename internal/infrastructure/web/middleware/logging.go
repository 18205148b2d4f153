package middleware

import (
	"net/http"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// LoggingMiddleware logs the arrival of each request with debug details.
// RequestTracingMiddleware logs the completion.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logging.HTTP().RequestReceived(ctx, r.Method, r.URL.Path, r.UserAgent(), getRemoteIP(r))
		logging.Debug(ctx, "Processing HTTP request", logging.Fields{
			"headers":        extractImportantHeaders(r),
			"query":          r.URL.RawQuery,
			"content_length": r.ContentLength,
		})

		next.ServeHTTP(w, r)
	})
}

// extractImportantHeaders extracts headers worth logging, never credentials
func extractImportantHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string)
	for _, header := range []string{"Content-Type", "Accept", "Origin", "X-Forwarded-For", "X-Real-IP"} {
		if value := r.Header.Get(header); value != "" {
			headers[header] = value
		}
	}
	return headers
}
