package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/elvis-fintech/busyedge/internal/application/services"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/ai/openai"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/config"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/exchange"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/exchange/alternative"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/exchange/binance"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/exchange/bybit"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/exchange/coingecko"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/notify/telegram"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/ratelimit"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/repositories/alerts"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/repositories/cache"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/upstream"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/web/handlers"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/web/server"
)

// Set with -ldflags "-X main.version=... -X main.buildTime=..."
var (
	version   = "0.1.0"
	buildTime = "unknown"
)

const serviceName = "busyedge"

// @title BusyEdge API
// @version 0.1.0
// @description Crypto dashboard backend. Aggregates CoinGecko, alternative.me, Binance and Bybit with stale-cache fallback.
// @host localhost:8000
// @BasePath /
func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.WarnWithError(context.Background(), "Failed to load .env file", err, nil)
	}

	cfg, err := config.NewLoader().Load()
	if err != nil {
		logging.ErrorWithError(context.Background(), "Failed to load configuration", err, nil)
		os.Exit(1)
	}

	loggerConfig := logging.NewConfig(serviceName, version, config.GetEnvironment()).
		WithLevel(logging.LogLevelFromString(cfg.Logging.Level)).
		WithFormat(logging.LogFormatFromString(cfg.Logging.Format))
	if err := logging.InitializeGlobalLoggers(loggerConfig); err != nil {
		logging.ErrorWithError(context.Background(), "Failed to initialize loggers", err, nil)
		os.Exit(1)
	}

	ctx := logging.WithRequestID(context.Background(), "startup")

	if err := config.NewValidator().Validate(cfg); err != nil {
		logging.ErrorWithError(ctx, "Invalid configuration", err, nil)
		os.Exit(1)
	}

	logging.Info(ctx, "Starting BusyEdge API", logging.Fields{
		"version":       version,
		"cache_backend": cfg.Cache.Backend,
		"port":          cfg.Server.Port,
	})

	store, err := cache.NewFactory().CreateStore(cache.Config{
		Type:      cache.StoreType(cfg.Cache.Backend),
		RedisAddr: cfg.Cache.Redis.Addr,
		RedisDB:   cfg.Cache.Redis.DB,
		Password:  cfg.Cache.Redis.Password,
		Prefix:    cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache store", err, nil)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.WarnWithError(ctx, "Failed to close cache store", err, nil)
		}
	}()

	// Upstream clients. Only CoinGecko carries a request budget.
	coingeckoBudget := ratelimit.NewBudget("coingecko", ratelimit.BudgetConfig{
		Enabled:      cfg.CoinGecko.Budget.Enabled,
		Capacity:     cfg.CoinGecko.Budget.Capacity,
		RefillRate:   cfg.CoinGecko.Budget.RefillRate,
		RefillPeriod: cfg.CoinGecko.Budget.RefillPeriod,
	})
	coingeckoClient := coingecko.NewClient(upstream.NewClient(upstream.Config{
		Service: "CoinGecko",
		BaseURL: cfg.CoinGecko.BaseURL,
		Timeout: cfg.CoinGecko.Timeout,
		Budget:  coingeckoBudget,
	}), cfg.CoinGecko.TrendingLimit)

	fearGreedClient := alternative.NewClient(upstream.NewClient(upstream.Config{
		Service: "Fear & Greed",
		BaseURL: cfg.FearGreed.BaseURL,
		Timeout: cfg.FearGreed.Timeout,
	}))

	fundingAggregator := exchange.NewFundingAggregator(
		binance.NewClient(upstream.NewClient(upstream.Config{
			Service: "Binance",
			BaseURL: cfg.Funding.BinanceBaseURL,
			Timeout: cfg.Funding.Timeout,
		})),
		bybit.NewClient(upstream.NewClient(upstream.Config{
			Service: "Bybit",
			BaseURL: cfg.Funding.BybitBaseURL,
			Timeout: cfg.Funding.Timeout,
		})),
	)

	// Freshness caches, one per resource, all sharing the store
	priceCache := cache.NewPriceCache(store, cfg.CoinGecko.TTL)
	overviewCache := cache.NewFreshnessCache[entities.MarketOverview]("overview", store, cfg.CoinGecko.TTL)
	fearGreedCurrentCache := cache.NewFreshnessCache[entities.FearGreedReading]("fear_greed", store, cfg.FearGreed.TTL)
	fearGreedHistoryCache := cache.NewFreshnessCache[[]entities.FearGreedPoint]("fear_greed_history", store, cfg.FearGreed.TTL)
	fundingCache := cache.NewFreshnessCache[[]entities.FundingRate]("funding", store, cfg.Funding.TTL)

	marketService := services.NewMarketService(coingeckoClient, priceCache, overviewCache, cfg.CoinGecko.DefaultCoins)
	fearGreedService := services.NewFearGreedService(fearGreedClient, fearGreedCurrentCache, fearGreedHistoryCache)
	fundingService := services.NewFundingService(fundingAggregator, fundingCache, cfg.Funding.DefaultSymbols)
	dashboardService := services.NewDashboardService(marketService, marketService, fundingService)

	notifier := telegram.NewNotifier(telegram.Config{
		BotToken:    cfg.Telegram.BotToken,
		ChatID:      cfg.Telegram.ChatID,
		APIEndpoint: cfg.Telegram.APIEndpoint,
		Timeout:     cfg.Telegram.Timeout,
		MaxAttempts: cfg.Telegram.MaxAttempts,
		RetryDelay:  cfg.Telegram.RetryDelay,
	})
	alertService := services.NewAlertService(alerts.NewMemoryRepository(), marketService, notifier)
	portfolioService := services.NewPortfolioService(cfg.Portfolio.PositionsJSON, marketService)

	narrator := openai.NewNarrator(openai.Config{
		APIKey:    cfg.OpenAI.APIKey,
		BaseURL:   cfg.OpenAI.BaseURL,
		Model:     cfg.OpenAI.Model,
		Timeout:   cfg.OpenAI.Timeout,
		MaxTokens: cfg.OpenAI.MaxTokens,
	})

	logging.Info(ctx, "Optional integrations", logging.Fields{
		"telegram": notifier.Configured(),
		"openai":   narrator.Enabled(),
	})

	router := server.NewRouter(server.Handlers{
		Health: handlers.NewHealthHandler(store, cfg.Cache.Backend, map[string]handlers.BudgetReporter{
			"coingecko": coingeckoBudget,
		}),
		Market:    handlers.NewMarketHandler(marketService, fearGreedService, fundingService, dashboardService),
		Alerts:    handlers.NewAlertHandler(alertService),
		Portfolio: handlers.NewPortfolioHandler(portfolioService),
		Insights: handlers.NewInsightHandler(
			services.NewSentimentService(nil),
			services.NewSignalService(nil, narrator),
			services.NewWhaleService(),
		),
	}, cfg.CORS.AllowedOrigins)

	srv := server.NewServer(router, cfg.Server.Port, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)

	metrics.SetApplicationInfo(version, buildTime, runtime.Version())

	runCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()

	go trackUptime(runCtx, time.Now())
	if cfg.Alerts.CheckInterval > 0 {
		go runAlertChecks(runCtx, alertService, cfg.Alerts.CheckInterval)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logging.Info(ctx, "Shutdown signal received", logging.Fields{
			"signal": sig.String(),
		})
	case err := <-serverErr:
		if err != nil {
			logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
		}
	}

	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
	}

	logging.Info(ctx, "Server shutdown completed", nil)
}

// runAlertChecks evaluates the active alerts every interval until ctx is done
func runAlertChecks(ctx context.Context, alertService *services.AlertService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logging.Info(ctx, "Starting background alert checks", logging.Fields{
		"interval": interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx := logging.WithRequestID(ctx, logging.GenerateRequestID())
			result, err := alertService.CheckAlerts(checkCtx)
			if err != nil {
				logging.WarnWithError(checkCtx, "Background alert check failed", err, nil)
				continue
			}
			logging.Debug(checkCtx, "Background alert check completed", logging.Fields{
				"checked":   result.CheckedCount,
				"triggered": result.TriggeredCount,
				"delivery":  result.Delivery,
			})
		}
	}
}

// trackUptime refreshes the uptime gauge every 15 seconds
func trackUptime(ctx context.Context, startedAt time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		metrics.UpdateUptime(time.Since(startedAt).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
