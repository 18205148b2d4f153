package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/elvis-fintech/busyedge/internal/docs"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/web/handlers"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/web/middleware"
)

// Handlers groups the route handlers
type Handlers struct {
	Health    *handlers.HealthHandler
	Market    *handlers.MarketHandler
	Alerts    *handlers.AlertHandler
	Portfolio *handlers.PortfolioHandler
	Insights  *handlers.InsightHandler
}

// NewRouter registers every route and wraps the router with the middleware chain
func NewRouter(h Handlers, corsOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.StrictSlash(false)

	router.HandleFunc("/", h.Health.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", h.Health.Status).Methods(http.MethodGet)

	market := api.PathPrefix("/market").Subrouter()
	market.HandleFunc("/prices", h.Market.GetPrices).Methods(http.MethodGet)
	market.HandleFunc("/overview", h.Market.GetOverview).Methods(http.MethodGet)
	market.HandleFunc("/funding", h.Market.GetFunding).Methods(http.MethodGet)
	market.HandleFunc("/dashboard", h.Market.GetDashboard).Methods(http.MethodGet)
	market.HandleFunc("/fear-greed", h.Market.GetFearGreed).Methods(http.MethodGet)
	market.HandleFunc("/fear-greed/history", h.Market.GetFearGreedHistory).Methods(http.MethodGet)

	api.HandleFunc("/alerts", h.Alerts.ListAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts", h.Alerts.CreateAlert).Methods(http.MethodPost)
	api.HandleFunc("/alerts/check", h.Alerts.CheckAlerts).Methods(http.MethodPost)
	api.HandleFunc("/alerts/{id}", h.Alerts.DeleteAlert).Methods(http.MethodDelete)

	api.HandleFunc("/portfolio", h.Portfolio.GetPortfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/{coin}", h.Portfolio.GetPosition).Methods(http.MethodGet)

	sentiment := api.PathPrefix("/sentiment").Subrouter()
	sentiment.HandleFunc("/overall", h.Insights.GetOverallSentiment).Methods(http.MethodGet)
	sentiment.HandleFunc("/coin", h.Insights.GetCoinSentiment).Methods(http.MethodGet)
	sentiment.HandleFunc("/trending", h.Insights.GetTrendingTopics).Methods(http.MethodGet)
	sentiment.HandleFunc("/history", h.Insights.GetSentimentHistory).Methods(http.MethodGet)

	ai := api.PathPrefix("/ai").Subrouter()
	ai.HandleFunc("/signals", h.Insights.GetSignals).Methods(http.MethodGet)
	ai.HandleFunc("/signals/{coin}", h.Insights.GetSignal).Methods(http.MethodGet)
	ai.HandleFunc("/analysis/{coin}", h.Insights.GetAnalysis).Methods(http.MethodGet)

	whale := api.PathPrefix("/whale").Subrouter()
	whale.HandleFunc("/summary", h.Insights.GetWhaleSummary).Methods(http.MethodGet)
	whale.HandleFunc("/transactions", h.Insights.GetWhaleTransactions).Methods(http.MethodGet)
	whale.HandleFunc("/exchange-flows", h.Insights.GetExchangeFlows).Methods(http.MethodGet)
	whale.HandleFunc("/wallets", h.Insights.GetWhaleWallets).Methods(http.MethodGet)

	// CORS sits outside the router so preflight requests never reach method matching
	var handler http.Handler = router
	handler = middleware.CORS(corsOrigins)(handler)
	handler = metrics.HTTPMetricsMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestTracingMiddleware(handler)
	return handler
}
