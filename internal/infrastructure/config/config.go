package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
	FearGreed FearGreedConfig `yaml:"fear_greed" mapstructure:"fear_greed"`
	Funding   FundingConfig   `yaml:"funding" mapstructure:"funding"`
	Telegram  TelegramConfig  `yaml:"telegram" mapstructure:"telegram"`
	OpenAI    OpenAIConfig    `yaml:"openai" mapstructure:"openai"`
	Alerts    AlertsConfig    `yaml:"alerts" mapstructure:"alerts"`
	Portfolio PortfolioConfig `yaml:"portfolio" mapstructure:"portfolio"`
	CORS      CORSConfig      `yaml:"cors" mapstructure:"cors"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CacheConfig selects the store behind the freshness caches
type CacheConfig struct {
	Backend string      `yaml:"backend" mapstructure:"backend"`
	Redis   RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	Prefix   string `yaml:"prefix" mapstructure:"prefix"`
}

// BudgetConfig is the request budget of one upstream
type BudgetConfig struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	Capacity     int           `yaml:"capacity" mapstructure:"capacity"`
	RefillRate   int           `yaml:"refill_rate" mapstructure:"refill_rate"`
	RefillPeriod time.Duration `yaml:"refill_period" mapstructure:"refill_period"`
}

// CoinGeckoConfig configures prices and the market overview
type CoinGeckoConfig struct {
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
	DefaultCoins  []string      `yaml:"default_coins" mapstructure:"default_coins"`
	TrendingLimit int           `yaml:"trending_limit" mapstructure:"trending_limit"`
	Budget        BudgetConfig  `yaml:"budget" mapstructure:"budget"`
}

// FearGreedConfig configures the alternative.me index
type FearGreedConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// FundingConfig configures the Binance and Bybit funding sources
type FundingConfig struct {
	BinanceBaseURL string        `yaml:"binance_base_url" mapstructure:"binance_base_url"`
	BybitBaseURL   string        `yaml:"bybit_base_url" mapstructure:"bybit_base_url"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	TTL            time.Duration `yaml:"ttl" mapstructure:"ttl"`
	DefaultSymbols []string      `yaml:"default_symbols" mapstructure:"default_symbols"`
}

// TelegramConfig configures alert delivery. Empty token or chat id disables it.
type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token" mapstructure:"bot_token"`
	ChatID      string        `yaml:"chat_id" mapstructure:"chat_id"`
	APIEndpoint string        `yaml:"api_endpoint" mapstructure:"api_endpoint"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxAttempts uint          `yaml:"max_attempts" mapstructure:"max_attempts"`
	RetryDelay  time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
}

// OpenAIConfig configures the analysis narrator. An empty key disables it.
type OpenAIConfig struct {
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Model     string        `yaml:"model" mapstructure:"model"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// AlertsConfig configures the background alert checker. Zero disables it.
type AlertsConfig struct {
	CheckInterval time.Duration `yaml:"check_interval" mapstructure:"check_interval"`
}

// PortfolioConfig holds the configured positions as a JSON array
type PortfolioConfig struct {
	PositionsJSON string `yaml:"positions_json" mapstructure:"positions_json"`
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LoggingConfig contains logging system configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    45 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend: "memory",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				DB:     0,
				Prefix: "busyedge:",
			},
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL:       "https://api.coingecko.com/api/v3",
			Timeout:       12 * time.Second,
			TTL:           60 * time.Second,
			DefaultCoins:  []string{"bitcoin", "ethereum", "solana", "ripple", "dogecoin"},
			TrendingLimit: 5,
			Budget: BudgetConfig{
				Enabled:      true,
				Capacity:     30,
				RefillRate:   1,
				RefillPeriod: 2 * time.Second,
			},
		},
		FearGreed: FearGreedConfig{
			BaseURL: "https://api.alternative.me/fng",
			Timeout: 10 * time.Second,
			TTL:     5 * time.Minute,
		},
		Funding: FundingConfig{
			BinanceBaseURL: "https://fapi.binance.com",
			BybitBaseURL:   "https://api.bybit.com",
			Timeout:        12 * time.Second,
			TTL:            60 * time.Second,
			DefaultSymbols: []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"},
		},
		Telegram: TelegramConfig{
			Timeout:     10 * time.Second,
			MaxAttempts: 3,
			RetryDelay:  500 * time.Millisecond,
		},
		OpenAI: OpenAIConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			Timeout:   15 * time.Second,
			MaxTokens: 160,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
