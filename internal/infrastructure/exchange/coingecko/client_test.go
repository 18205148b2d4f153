package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

func newServer(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	api := upstream.NewClient(upstream.Config{Service: ServiceName, BaseURL: server.URL, Timeout: time.Second})
	return NewClient(api, 2)
}

func respond(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_SimplePrices(t *testing.T) {
	var query string
	client := newServer(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/simple/price": func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			_, _ = w.Write([]byte(simplePricePayload))
		},
	})

	rows, err := client.SimplePrices(context.Background(), []string{"bitcoin", "ethereum"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, query, "ids=bitcoin%2Cethereum")
	assert.Contains(t, query, "vs_currencies=usd")
	assert.Contains(t, query, "include_last_updated_at=true")
}

func TestClient_SimplePrices_UpstreamError(t *testing.T) {
	client := newServer(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/simple/price": respond(http.StatusTooManyRequests, `{"status":{"error_code":429}}`),
	})

	_, err := client.SimplePrices(context.Background(), []string{"bitcoin"})

	var upstreamErr *upstream.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "CoinGecko API error: 429", err.Error())
}

func TestClient_SimplePrices_NonObjectPayload(t *testing.T) {
	client := newServer(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/simple/price": respond(http.StatusOK, `[1,2,3]`),
	})

	_, err := client.SimplePrices(context.Background(), []string{"bitcoin"})

	var upstreamErr *upstream.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestClient_MarketOverview(t *testing.T) {
	client := newServer(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/global":          respond(http.StatusOK, `{"data":{"markets":900,"market_cap_percentage":{"btc":50}}}`),
		"/search/trending": respond(http.StatusOK, `{"coins":[{"item":{"id":"a"}},{"item":{"id":"b"}},{"item":{"id":"c"}}]}`),
	})

	overview, err := client.MarketOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(900), *overview.Global.Markets)
	assert.Equal(t, 50.0, *overview.Global.BTCDominancePct)
	assert.Len(t, overview.Trending, 2, "trending is bounded by the configured limit")
}

func TestClient_MarketOverview_TrendingFailureFailsOverview(t *testing.T) {
	client := newServer(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/global":          respond(http.StatusOK, `{"data":{}}`),
		"/search/trending": respond(http.StatusBadGateway, ``),
	})

	_, err := client.MarketOverview(context.Background())

	var upstreamErr *upstream.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
}

func TestNewClient_DefaultTrendingLimit(t *testing.T) {
	client := NewClient(upstream.NewClient(upstream.Config{Service: ServiceName, BaseURL: DefaultBaseURL}), 0)
	assert.Equal(t, DefaultTrendingLimit, client.trendingLimit)
}
