package alternative

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

func newTestClient(t *testing.T, status int, body string, gotQuery *string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewClient(upstream.NewClient(upstream.Config{Service: ServiceName, BaseURL: server.URL, Timeout: time.Second}))
}

func TestClient_Current(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `{"name":"Fear and Greed Index","data":[
		{"value":"72","value_classification":"Greed","timestamp":"1700000000","time_until_update":"3600"}
	]}`, nil)

	reading, err := client.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 72, reading.Value)
	assert.Equal(t, "Greed", reading.ValueClassification)
	assert.Equal(t, int64(1700000000), reading.Timestamp)
	assert.Equal(t, "2023-11-14 22:13:20 UTC", reading.TimeUpdated)
}

func TestClient_Current_EmptyDataIsUpstreamError(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `{"data":[]}`, nil)

	_, err := client.Current(context.Background())

	var upstreamErr *upstream.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "Fear & Greed API returned no data", err.Error())
}

func TestClient_Current_HTTPError(t *testing.T) {
	client := newTestClient(t, http.StatusServiceUnavailable, ``, nil)

	_, err := client.Current(context.Background())

	assert.EqualError(t, err, "Fear & Greed API error: 503")
}

func TestClient_History(t *testing.T) {
	var query string
	client := newTestClient(t, http.StatusOK, `{"data":[
		{"value":"40","value_classification":"Fear","timestamp":"1700006400"},
		{"value":"35","value_classification":"Fear","timestamp":"1699920000"},
		{"value":"20","value_classification":"Extreme Fear","timestamp":"1699833600"}
	]}`, &query)

	history, err := client.History(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "limit=2", query)
	require.Len(t, history, 2, "never more rows than requested")
	assert.Equal(t, 40, history[0].Value)
	assert.Equal(t, "2023-11-15", history[0].Date)
	assert.Equal(t, "2023-11-14", history[1].Date)
}

func TestClient_History_LimitCappedAt100(t *testing.T) {
	var query string
	client := newTestClient(t, http.StatusOK, `{"data":[]}`, &query)

	history, err := client.History(context.Background(), 365)

	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Equal(t, "limit=100", query)
}

func TestNormalizeHistory_MissingValueIsUpstreamError(t *testing.T) {
	_, err := NormalizeHistory(gjson.Parse(`{"data":[{"value_classification":"Fear"}]}`), 10)

	var upstreamErr *upstream.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestHistoryLimit(t *testing.T) {
	assert.Equal(t, 1, HistoryLimit(0))
	assert.Equal(t, 30, HistoryLimit(30))
	assert.Equal(t, 100, HistoryLimit(100))
	assert.Equal(t, 100, HistoryLimit(101))
}
