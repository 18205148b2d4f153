package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/application/services"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

const defaultSentimentHistoryDays = 7

// SentimentReader serves social sentiment
type SentimentReader interface {
	Overall(ctx context.Context) entities.OverallSentiment
	Coin(ctx context.Context, coin string) entities.CoinSentiment
	Trending(ctx context.Context) []entities.TrendingTopic
	History(ctx context.Context, days int) ([]entities.SentimentPoint, error)
}

// SignalReader serves trading signals and analyses
type SignalReader interface {
	AllSignals(ctx context.Context) []entities.TradingSignal
	Signal(ctx context.Context, coin string) entities.TradingSignal
	Analysis(ctx context.Context, coin string) entities.CoinAnalysis
}

// WhaleReader serves on-chain whale activity
type WhaleReader interface {
	Transactions(ctx context.Context, minValueUSD float64) []entities.WhaleTransaction
	ExchangeFlows(ctx context.Context) map[string]entities.ExchangeFlow
	Summary(ctx context.Context) entities.WhaleSummary
	Wallets(ctx context.Context) []entities.WhaleWallet
}

// InsightHandler serves /api/sentiment, /api/ai and /api/whale
type InsightHandler struct {
	sentiment SentimentReader
	signals   SignalReader
	whales    WhaleReader
}

// NewInsightHandler creates the insight handler
func NewInsightHandler(sentiment SentimentReader, signals SignalReader, whales WhaleReader) *InsightHandler {
	return &InsightHandler{
		sentiment: sentiment,
		signals:   signals,
		whales:    whales,
	}
}

// GetOverallSentiment godoc
// @Summary Market-wide sentiment
// @Tags sentiment
// @Produce json
// @Success 200 {object} dto.DataResponse[entities.OverallSentiment]
// @Router /api/sentiment/overall [get]
func (h *InsightHandler) GetOverallSentiment(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.sentiment.Overall(r.Context())))
}

// GetCoinSentiment godoc
// @Summary Sentiment of one coin
// @Tags sentiment
// @Produce json
// @Param coin query string false "Ticker" default(BTC)
// @Success 200 {object} dto.DataResponse[entities.CoinSentiment]
// @Router /api/sentiment/coin [get]
func (h *InsightHandler) GetCoinSentiment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(h.sentiment.Coin(ctx, r.URL.Query().Get("coin"))))
}

// GetTrendingTopics godoc
// @Summary Trending topics
// @Tags sentiment
// @Produce json
// @Success 200 {object} dto.DataResponse[[]entities.TrendingTopic]
// @Router /api/sentiment/trending [get]
func (h *InsightHandler) GetTrendingTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.sentiment.Trending(r.Context())))
}

// GetSentimentHistory godoc
// @Summary Sentiment history
// @Tags sentiment
// @Produce json
// @Param days query int false "Number of days (1-30)" default(7)
// @Success 200 {object} dto.DataResponse[[]entities.SentimentPoint]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/sentiment/history [get]
func (h *InsightHandler) GetSentimentHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := dto.ParseIntParam("days", r.URL.Query().Get("days"), defaultSentimentHistoryDays, 1, entities.MaxSentimentHistoryDays)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	history, err := h.sentiment.History(ctx, days)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(history))
}

// GetSignals godoc
// @Summary Trading signals of every tracked coin
// @Tags ai
// @Produce json
// @Success 200 {object} dto.DataResponse[[]entities.TradingSignal]
// @Router /api/ai/signals [get]
func (h *InsightHandler) GetSignals(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.signals.AllSignals(r.Context())))
}

// GetSignal godoc
// @Summary Trading signal of one coin
// @Tags ai
// @Produce json
// @Param coin path string true "Ticker" example(BTC)
// @Success 200 {object} dto.DataResponse[entities.TradingSignal]
// @Router /api/ai/signals/{coin} [get]
func (h *InsightHandler) GetSignal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(h.signals.Signal(ctx, mux.Vars(r)["coin"])))
}

// GetAnalysis godoc
// @Summary Detailed analysis of one coin
// @Description The summary is written by OpenAI when configured
// @Tags ai
// @Produce json
// @Param coin path string true "Ticker" example(ETH)
// @Success 200 {object} dto.DataResponse[entities.CoinAnalysis]
// @Router /api/ai/analysis/{coin} [get]
func (h *InsightHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(h.signals.Analysis(ctx, mux.Vars(r)["coin"])))
}

// GetWhaleSummary godoc
// @Summary Whale activity summary
// @Tags whale
// @Produce json
// @Success 200 {object} dto.DataResponse[entities.WhaleSummary]
// @Router /api/whale/summary [get]
func (h *InsightHandler) GetWhaleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.whales.Summary(r.Context())))
}

// GetWhaleTransactions godoc
// @Summary Recent large transfers
// @Tags whale
// @Produce json
// @Param min_value_usd query number false "Minimum USD value" default(10000)
// @Success 200 {object} dto.DataResponse[[]entities.WhaleTransaction]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/whale/transactions [get]
func (h *InsightHandler) GetWhaleTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minValue, err := dto.ParseMinValueParam("min_value_usd", r.URL.Query().Get("min_value_usd"), services.DefaultWhaleMinValueUSD)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(h.whales.Transactions(ctx, minValue)))
}

// GetExchangeFlows godoc
// @Summary Exchange ETH flows
// @Tags whale
// @Produce json
// @Success 200 {object} dto.DataResponse[map[string]entities.ExchangeFlow]
// @Router /api/whale/exchange-flows [get]
func (h *InsightHandler) GetExchangeFlows(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.whales.ExchangeFlows(r.Context())))
}

// GetWhaleWallets godoc
// @Summary Tracked whale wallets
// @Tags whale
// @Produce json
// @Success 200 {object} dto.DataResponse[[]entities.WhaleWallet]
// @Router /api/whale/wallets [get]
func (h *InsightHandler) GetWhaleWallets(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.Wrap(h.whales.Wallets(r.Context())))
}
