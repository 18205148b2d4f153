package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the BusyEdge backend
var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "busyedge_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "busyedge_http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)

	HTTPResponseSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "busyedge_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)

	// Cache Metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_cache_operations_total",
			Help: "Total number of freshness cache operations",
		},
		[]string{"cache", "result"}, // result: fresh_hit/miss/stale_hit/projection/set/error
	)

	// External API Metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "busyedge_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 15.0},
		},
		[]string{"service", "endpoint"},
	)

	// Resilience Metrics
	StaleFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_stale_fallbacks_total",
			Help: "Total number of responses served from cache after a failed live fetch",
		},
		[]string{"resource"},
	)

	ResourceUnavailableTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_resource_unavailable_total",
			Help: "Total number of failed live fetches with no cache to fall back on",
		},
		[]string{"resource"},
	)

	DashboardCompositionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_dashboard_compositions_total",
			Help: "Total number of dashboard compositions by data source",
		},
		[]string{"data_source"}, // data_source: live/partial_cache/failed
	)

	FundingSourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_funding_source_failures_total",
			Help: "Total number of funding exchange failures tolerated by the merge",
		},
		[]string{"source", "reason"}, // reason: timeout/connection_error/http_error/malformed_payload/budget_exhausted/unknown
	)

	// Upstream Budget Metrics
	UpstreamBudgetTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_upstream_budget_requests_total",
			Help: "Total number of upstream requests checked against the local budget",
		},
		[]string{"service", "result"}, // result: allowed/blocked
	)

	UpstreamBudgetTokens = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "busyedge_upstream_budget_tokens_remaining",
			Help: "Number of tokens remaining in the upstream budget",
		},
		[]string{"service"},
	)

	// Alert Metrics
	AlertChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_alert_checks_total",
			Help: "Total number of alert check runs by delivery status",
		},
		[]string{"delivery"},
	)

	AlertsTriggeredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_alerts_triggered_total",
			Help: "Total number of triggered price alerts",
		},
		[]string{"symbol", "direction"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "busyedge_notifications_total",
			Help: "Total number of notification deliveries by status",
		},
		[]string{"channel", "status"},
	)

	// Application Metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "busyedge_application_info",
			Help: "Application information",
		},
		[]string{"version", "build_time", "go_version"},
	)

	UptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "busyedge_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, path string, statusCode int, duration float64, requestSize, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

	if requestSize > 0 {
		HTTPRequestSizeBytes.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordCacheOperation records a freshness cache lookup or write
func RecordCacheOperation(cache, result string) {
	CacheOperationsTotal.WithLabelValues(cache, result).Inc()
}

// RecordExternalAPICall records external API call metrics, duration in seconds
func RecordExternalAPICall(service, endpoint string, statusCode int, duration float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(duration)
}

// RecordStaleFallback records a response served from cache after a failed fetch
func RecordStaleFallback(resource string) {
	StaleFallbacksTotal.WithLabelValues(resource).Inc()
}

// RecordResourceUnavailable records a failed fetch with an empty cache
func RecordResourceUnavailable(resource string) {
	ResourceUnavailableTotal.WithLabelValues(resource).Inc()
}

// RecordDashboardComposition records the outcome of one dashboard composition
func RecordDashboardComposition(dataSource string) {
	DashboardCompositionsTotal.WithLabelValues(dataSource).Inc()
}

// RecordFundingSourceFailure records a failed funding exchange
func RecordFundingSourceFailure(source, reason string) {
	FundingSourceFailuresTotal.WithLabelValues(source, reason).Inc()
}

// RecordUpstreamBudget records whether the local budget allowed an upstream call
func RecordUpstreamBudget(service string, allowed bool) {
	result := "blocked"
	if allowed {
		result = "allowed"
	}
	UpstreamBudgetTotal.WithLabelValues(service, result).Inc()
}

// UpdateUpstreamBudgetTokens updates remaining tokens gauge
func UpdateUpstreamBudgetTokens(service string, tokens float64) {
	UpstreamBudgetTokens.WithLabelValues(service).Set(tokens)
}

// RecordAlertCheck records one alert check run
func RecordAlertCheck(delivery string) {
	AlertChecksTotal.WithLabelValues(delivery).Inc()
}

// RecordAlertTriggered records a triggered alert
func RecordAlertTriggered(symbol, direction string) {
	AlertsTriggeredTotal.WithLabelValues(symbol, direction).Inc()
}

// RecordNotification records a notification delivery attempt outcome
func RecordNotification(channel, status string) {
	NotificationsTotal.WithLabelValues(channel, status).Inc()
}

// SetApplicationInfo sets application information
func SetApplicationInfo(version, buildTime, goVersion string) {
	ApplicationInfo.WithLabelValues(version, buildTime, goVersion).Set(1)
}

// UpdateUptime updates application uptime
func UpdateUptime(seconds float64) {
	UptimeSeconds.Set(seconds)
}
