package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
)

type MockFundingSource struct {
	mock.Mock
	name string
}

func (m *MockFundingSource) Name() string {
	return m.name
}

func (m *MockFundingSource) FundingRates(ctx context.Context, symbols []string) ([]entities.FundingQuote, error) {
	args := m.Called(ctx, symbols)
	quotes, _ := args.Get(0).([]entities.FundingQuote)
	return quotes, args.Error(1)
}

func rate(v float64) *float64 {
	return &v
}

func quote(symbol string, r *float64, next string) entities.FundingQuote {
	return entities.FundingQuote{
		Symbol: symbol,
		Funding: entities.ExchangeFunding{
			FundingRate:     r,
			NextFundingTime: json.RawMessage(next),
		},
	}
}

func TestFundingAggregator_MergesBothSources(t *testing.T) {
	symbols := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	binance := &MockFundingSource{name: "binance"}
	bybit := &MockFundingSource{name: "bybit"}
	binance.On("FundingRates", mock.Anything, symbols).Return([]entities.FundingQuote{
		quote("BTCUSDT", rate(0.0001), `1718870400000`),
		quote("ETHUSDT", rate(0.0003), `1718870400000`),
	}, nil)
	bybit.On("FundingRates", mock.Anything, symbols).Return([]entities.FundingQuote{
		quote("BTCUSDT", rate(0.0003), `"1718870400000"`),
		quote("ETHUSDT", nil, `"1718870400000"`),
	}, nil)

	rows, err := NewFundingAggregator(binance, bybit).MergedFundingRates(context.Background(), symbols)

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "BTCUSDT", rows[0].Symbol)
	require.NotNil(t, rows[0].AverageRate)
	assert.InDelta(t, 0.0002, *rows[0].AverageRate, 1e-12)

	require.NotNil(t, rows[1].AverageRate)
	assert.InDelta(t, 0.0003, *rows[1].AverageRate, 1e-12)
	assert.NotNil(t, rows[1].Bybit)

	assert.Equal(t, "SOLUSDT", rows[2].Symbol)
	assert.Nil(t, rows[2].Binance)
	assert.Nil(t, rows[2].Bybit)
	assert.Nil(t, rows[2].AverageRate)

	binance.AssertExpectations(t)
	bybit.AssertExpectations(t)
}

func TestFundingAggregator_OneSourceDown(t *testing.T) {
	symbols := []string{"BTCUSDT"}
	binance := &MockFundingSource{name: "binance"}
	bybit := &MockFundingSource{name: "bybit"}
	binance.On("FundingRates", mock.Anything, symbols).Return(nil,
		&upstream.ConnectivityError{Service: "Binance", Message: "cannot reach Binance API", Err: errors.New("refused")})
	bybit.On("FundingRates", mock.Anything, symbols).Return([]entities.FundingQuote{
		quote("BTCUSDT", rate(0.0004), `"1"`),
	}, nil)

	rows, err := NewFundingAggregator(binance, bybit).MergedFundingRates(context.Background(), symbols)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Binance)
	require.NotNil(t, rows[0].AverageRate)
	assert.InDelta(t, 0.0004, *rows[0].AverageRate, 1e-12)
}

func TestFundingAggregator_AllSourcesDown(t *testing.T) {
	binance := &MockFundingSource{name: "binance"}
	bybit := &MockFundingSource{name: "bybit"}
	binance.On("FundingRates", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	bybit.On("FundingRates", mock.Anything, mock.Anything).Return(nil, errors.New("bang"))

	rows, err := NewFundingAggregator(binance, bybit).MergedFundingRates(context.Background(), []string{"BTCUSDT"})

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, ErrAllFundingSourcesFailed)
}

func TestFundingAggregator_DefaultSymbols(t *testing.T) {
	binance := &MockFundingSource{name: "binance"}
	bybit := &MockFundingSource{name: "bybit"}
	binance.On("FundingRates", mock.Anything, entities.DefaultFundingSymbols).Return([]entities.FundingQuote{}, nil)
	bybit.On("FundingRates", mock.Anything, entities.DefaultFundingSymbols).Return([]entities.FundingQuote{}, nil)

	rows, err := NewFundingAggregator(binance, bybit).MergedFundingRates(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, rows, len(entities.DefaultFundingSymbols))
	for i, row := range rows {
		assert.Equal(t, entities.DefaultFundingSymbols[i], row.Symbol)
	}
}

func TestMergeFunding_SerializesNulls(t *testing.T) {
	rows := MergeFunding([]string{"SOLUSDT"}, nil, nil)

	out, err := json.Marshal(rows)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"symbol":"SOLUSDT","binance":null,"bybit":null,"average_rate":null}]`, string(out))
}

func TestDetermineFailureReason(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "unknown"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"connectivity", &upstream.ConnectivityError{Service: "Bybit", Message: "cannot reach Bybit API", Err: errors.New("refused")}, "connection_error"},
		{"http status", &upstream.UpstreamError{Service: "Bybit", StatusCode: http.StatusServiceUnavailable, Message: "Bybit API error: 503"}, "http_error"},
		{"payload", upstream.NewPayloadError("Bybit", "returned retCode 1: x"), "malformed_payload"},
		{"wrapped http status", fmt.Errorf("bybit tickers: %w", &upstream.UpstreamError{Service: "Bybit", StatusCode: http.StatusBadGateway}), "http_error"},
		{"local budget", fmt.Errorf("bybit request not sent: %w", upstream.ErrBudgetExhausted), "budget_exhausted"},
		{"plain timeout text", errors.New("read timeout"), "timeout"},
		{"other", errors.New("weird"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineFailureReason(tt.err))
		})
	}
}
