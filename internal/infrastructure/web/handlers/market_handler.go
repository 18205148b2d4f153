package handlers

import (
	"context"
	"net/http"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

const defaultFearGreedHistoryDays = 30

// MarketReader resolves CoinGecko resources
type MarketReader interface {
	ResolvePrices(ctx context.Context, coinIDs []string) resilience.Result[[]entities.CoinPrice]
	ResolveOverview(ctx context.Context) resilience.Result[entities.MarketOverview]
}

// FearGreedReader resolves the Fear & Greed index
type FearGreedReader interface {
	ResolveFearGreedCurrent(ctx context.Context) resilience.Result[entities.FearGreedReading]
	ResolveFearGreedHistory(ctx context.Context, days int) resilience.Result[[]entities.FearGreedPoint]
}

// FundingReader resolves merged funding rates
type FundingReader interface {
	ResolveFunding(ctx context.Context, symbols []string) resilience.Result[[]entities.FundingRate]
}

// DashboardComposer builds the composed dashboard
type DashboardComposer interface {
	ComposeDashboard(ctx context.Context, coinIDs, symbols []string) (*entities.Dashboard, error)
}

// MarketHandler serves /api/market
type MarketHandler struct {
	market    MarketReader
	fearGreed FearGreedReader
	funding   FundingReader
	dashboard DashboardComposer
}

// NewMarketHandler creates the market handler
func NewMarketHandler(market MarketReader, fearGreed FearGreedReader, funding FundingReader, dashboard DashboardComposer) *MarketHandler {
	return &MarketHandler{
		market:    market,
		fearGreed: fearGreed,
		funding:   funding,
		dashboard: dashboard,
	}
}

// GetPrices godoc
// @Summary Simple prices
// @Description Prices, market caps and 24h changes from CoinGecko. Served from cache when CoinGecko fails.
// @Tags market
// @Produce json
// @Param coin_ids query string false "Comma separated CoinGecko ids" example(bitcoin,ethereum)
// @Success 200 {object} dto.CompositeResponse[[]entities.CoinPrice]
// @Failure 502 {object} dto.ErrorResponse "CoinGecko failed and nothing is cached"
// @Router /api/market/prices [get]
func (h *MarketHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coinIDs := entities.ParseCSV(r.URL.Query().Get("coin_ids"))

	result := h.market.ResolvePrices(ctx, coinIDs)
	if result.Failed() {
		writeServiceError(ctx, w, result.Err)
		return
	}

	logging.Debug(ctx, "Prices resolved", logging.Fields{
		"rows":     len(result.Value),
		"is_stale": result.IsStale(),
	})
	writeJSON(ctx, w, http.StatusOK, dto.ToCompositeResponse(result, dto.SourceCoinGecko, dto.SourceCoinGeckoCache))
}

// GetOverview godoc
// @Summary Market overview
// @Description Global market numbers and trending coins
// @Tags market
// @Produce json
// @Success 200 {object} dto.CompositeResponse[entities.MarketOverview]
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/market/overview [get]
func (h *MarketHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result := h.market.ResolveOverview(ctx)
	if result.Failed() {
		writeServiceError(ctx, w, result.Err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.ToCompositeResponse(result, dto.SourceCoinGecko, dto.SourceCoinGeckoCache))
}

// GetFunding godoc
// @Summary Perpetual funding rates
// @Description Binance and Bybit funding rates merged per symbol. One exchange failing is tolerated.
// @Tags market
// @Produce json
// @Param symbols query string false "Comma separated perpetual symbols" example(BTCUSDT,ETHUSDT)
// @Success 200 {object} dto.DataResponse[[]entities.FundingRate]
// @Failure 502 {object} dto.ErrorResponse "Both exchanges failed and nothing is cached"
// @Router /api/market/funding [get]
func (h *MarketHandler) GetFunding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	symbols := entities.ParseCSV(r.URL.Query().Get("symbols"))

	result := h.funding.ResolveFunding(ctx, symbols)
	if result.Failed() {
		writeServiceError(ctx, w, result.Err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(result.Value))
}

// GetDashboard godoc
// @Summary Composed dashboard
// @Description Prices, overview and funding fetched concurrently. Degraded parts are listed in stale_reasons.
// @Tags market
// @Produce json
// @Param coin_ids query string false "Comma separated CoinGecko ids"
// @Param symbols query string false "Comma separated perpetual symbols"
// @Success 200 {object} dto.DataResponse[entities.Dashboard]
// @Failure 502 {object} dto.ErrorResponse "Prices or overview unavailable with no cache"
// @Router /api/market/dashboard [get]
func (h *MarketHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	dashboard, err := h.dashboard.ComposeDashboard(ctx, entities.ParseCSV(query.Get("coin_ids")), entities.ParseCSV(query.Get("symbols")))
	if err != nil {
		logging.ErrorWithError(ctx, "Dashboard composition failed", err, nil)
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(dashboard))
}

// GetFearGreed godoc
// @Summary Latest Fear & Greed index
// @Tags market
// @Produce json
// @Success 200 {object} dto.DataResponse[dto.FearGreedCurrent]
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/market/fear-greed [get]
func (h *MarketHandler) GetFearGreed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result := h.fearGreed.ResolveFearGreedCurrent(ctx)
	if result.Failed() {
		writeServiceError(ctx, w, result.Err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(dto.ToFearGreedCurrent(result)))
}

// GetFearGreedHistory godoc
// @Summary Fear & Greed history
// @Description Daily values, newest first
// @Tags market
// @Produce json
// @Param days query int false "Number of days (1-100)" default(30)
// @Success 200 {object} dto.CompositeResponse[[]entities.FearGreedPoint]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/market/fear-greed/history [get]
func (h *MarketHandler) GetFearGreedHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := dto.ParseIntParam("days", r.URL.Query().Get("days"), defaultFearGreedHistoryDays, 1, entities.MaxFearGreedHistoryDays)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	result := h.fearGreed.ResolveFearGreedHistory(ctx, days)
	if result.Failed() {
		writeServiceError(ctx, w, result.Err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.ToCompositeResponse(result, dto.SourceAlternativeMe, dto.SourceAlternativeMeCache))
}
