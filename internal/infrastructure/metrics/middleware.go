package metrics

import (
	"net/http"
	"strings"
	"time"
)

// HTTPMetricsMiddleware collects HTTP metrics for Prometheus
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		wrapped := &responseWriterMetrics{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		RecordHTTPRequest(
			r.Method,
			normalizePath(r.URL.Path),
			wrapped.statusCode,
			time.Since(startTime).Seconds(),
			r.ContentLength,
			wrapped.written,
		)
	})
}

// responseWriterMetrics wraps http.ResponseWriter to capture metrics
type responseWriterMetrics struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// WriteHeader captures the status code
func (rw *responseWriterMetrics) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures the response size
func (rw *responseWriterMetrics) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// normalizePath collapses dynamic path segments to keep label cardinality bounded
func normalizePath(path string) string {
	if path == "/" {
		return "/"
	}

	path = strings.TrimSuffix(path, "/")

	switch {
	case path == "/health", path == "/ready", path == "/metrics":
		return path
	case strings.HasPrefix(path, "/swagger"):
		return "/swagger"
	case strings.HasPrefix(path, "/api/market/"):
		return path
	case strings.HasPrefix(path, "/api/alerts/check"):
		return "/api/alerts/check"
	case strings.HasPrefix(path, "/api/alerts/"):
		return "/api/alerts/{id}"
	case strings.HasPrefix(path, "/api/portfolio/"):
		return "/api/portfolio/{coin}"
	case strings.HasPrefix(path, "/api/ai/signals/"):
		return "/api/ai/signals/{coin}"
	case strings.HasPrefix(path, "/api/ai/analysis/"):
		return "/api/ai/analysis/{coin}"
	case strings.HasPrefix(path, "/api/"):
		return path
	default:
		return "/unknown"
	}
}
