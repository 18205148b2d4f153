package upstream

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/ratelimit"
)

// maxBodyBytes bounds how much of an upstream body is read
const maxBodyBytes = 8 << 20

// Config configures one upstream client
type Config struct {
	// Service is the display name used in error messages, e.g. "CoinGecko"
	Service string
	BaseURL string
	Timeout time.Duration
	Budget  *ratelimit.Budget
}

// Client issues single-attempt GET requests against one upstream JSON API.
// It never retries: callers decide how to degrade.
type Client struct {
	service    string
	metricName string
	baseURL    string
	httpClient *http.Client
	budget     *ratelimit.Budget
}

// NewClient creates a client with a shared transport and a fixed timeout
func NewClient(cfg Config) *Client {
	return &Client{
		service:    cfg.Service,
		metricName: metricLabel(cfg.Service),
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
		budget: cfg.Budget,
	}
}

// GetJSON fetches baseURL+endpoint and returns the parsed JSON document
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values) (gjson.Result, error) {
	if !c.budget.Allow() {
		err := newBudgetError(c.service)
		logging.Warn(ctx, "Request blocked by local budget", logging.Fields{
			logging.FieldExternalService:  c.metricName,
			logging.FieldExternalEndpoint: endpoint,
		})
		return gjson.Result{}, err
	}

	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logging.Debug(ctx, "Making upstream request", logging.Fields{
		logging.FieldExternalService: c.metricName,
		"url":                        target,
	})

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(requestStart)
	durationMs := float64(elapsed.Nanoseconds()) / 1e6

	if err != nil {
		metrics.RecordExternalAPICall(c.metricName, endpoint, 0, elapsed.Seconds())
		logging.ExternalRequestFailed(ctx, c.metricName, endpoint, durationMs, 0, err)
		return gjson.Result{}, newConnectivityError(c.service, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordExternalAPICall(c.metricName, endpoint, resp.StatusCode, elapsed.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(c.service, resp.StatusCode)
		logging.ExternalRequestFailed(ctx, c.metricName, endpoint, durationMs, resp.StatusCode, statusErr)
		return gjson.Result{}, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logging.ExternalRequestFailed(ctx, c.metricName, endpoint, durationMs, resp.StatusCode, err)
		return gjson.Result{}, newConnectivityError(c.service, err)
	}

	if !gjson.ValidBytes(body) {
		malformed := newMalformedError(c.service, resp.StatusCode)
		logging.ExternalRequestFailed(ctx, c.metricName, endpoint, durationMs, resp.StatusCode, malformed)
		return gjson.Result{}, malformed
	}

	logging.ExternalRequest(ctx, c.metricName, endpoint, durationMs, resp.StatusCode)
	return gjson.ParseBytes(body), nil
}

// metricLabel turns a display name like "Fear & Greed" into "fear_greed"
func metricLabel(service string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(service) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
