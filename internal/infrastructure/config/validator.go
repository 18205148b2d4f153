package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	minTTL = time.Second
	maxTTL = 24 * time.Hour
)

var perpetualSymbol = regexp.MustCompile(`^[A-Z0-9]{2,20}$`)

// Validator validates the loaded configuration
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the whole configuration, failing on the first bad section
func (v *Validator) Validate(config *Config) error {
	if err := v.validateConfigIntegrity(config); err != nil {
		return fmt.Errorf("config integrity check failed: %w", err)
	}

	if err := v.validateServer(config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := v.validateCache(config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := v.validateCoinGecko(config.CoinGecko); err != nil {
		return fmt.Errorf("coingecko config validation failed: %w", err)
	}

	if err := v.validateFearGreed(config.FearGreed); err != nil {
		return fmt.Errorf("fear_greed config validation failed: %w", err)
	}

	if err := v.validateFunding(config.Funding); err != nil {
		return fmt.Errorf("funding config validation failed: %w", err)
	}

	if err := v.validateTelegram(config.Telegram); err != nil {
		return fmt.Errorf("telegram config validation failed: %w", err)
	}

	if config.OpenAI.APIKey != "" {
		if err := v.validateURL(config.OpenAI.BaseURL, "openai base_url"); err != nil {
			return fmt.Errorf("openai config validation failed: %w", err)
		}
	}

	if config.Alerts.CheckInterval < 0 {
		return fmt.Errorf("alerts config validation failed: check_interval must not be negative, got: %v", config.Alerts.CheckInterval)
	}

	if err := v.validateLogging(config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

// validateConfigIntegrity catches values that decoded to zero from malformed input
func (v *Validator) validateConfigIntegrity(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port parsed as 0, check PORT")
	}
	if config.CoinGecko.TTL == 0 {
		return fmt.Errorf("coingecko TTL parsed as 0, check the duration format (e.g. 60s)")
	}
	if config.FearGreed.TTL == 0 {
		return fmt.Errorf("fear_greed TTL parsed as 0, check the duration format (e.g. 5m)")
	}
	if config.Funding.TTL == 0 {
		return fmt.Errorf("funding TTL parsed as 0, check the duration format (e.g. 60s)")
	}
	if config.Cache.Backend == "redis" && config.Cache.Redis.Prefix == "" {
		return fmt.Errorf("redis cache prefix is empty")
	}
	return nil
}

// validateServer validates the HTTP server settings
func (v *Validator) validateServer(config ServerConfig) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1-65535", config.Port)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got: %v", config.ShutdownTimeout)
	}

	if config.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("shutdown_timeout too long: %v, max 5 minutes", config.ShutdownTimeout)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 {
		return fmt.Errorf("read_timeout and write_timeout must be positive")
	}

	return nil
}

// validateCache validates the store backend
func (v *Validator) validateCache(config CacheConfig) error {
	validBackends := []string{"memory", "redis"}
	if !contains(validBackends, config.Backend) {
		return fmt.Errorf("invalid cache backend: %s, must be one of: %v", config.Backend, validBackends)
	}

	if config.Backend == "redis" {
		if err := v.validateRedis(config.Redis); err != nil {
			return err
		}
	}

	return nil
}

// validateRedis validates the Redis connection settings
func (v *Validator) validateRedis(config RedisConfig) error {
	if config.Addr == "" {
		return fmt.Errorf("redis addr cannot be empty")
	}

	if !strings.Contains(config.Addr, ":") {
		return fmt.Errorf("invalid redis addr format: %s, expected host:port", config.Addr)
	}

	if config.DB < 0 || config.DB > 15 {
		return fmt.Errorf("invalid redis DB: %d, must be between 0-15", config.DB)
	}

	return nil
}

// validateCoinGecko validates the CoinGecko upstream
func (v *Validator) validateCoinGecko(config CoinGeckoConfig) error {
	if err := v.validateURL(config.BaseURL, "coingecko base_url"); err != nil {
		return err
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("coingecko timeout must be positive, got: %v", config.Timeout)
	}

	if err := v.validateTTL(config.TTL); err != nil {
		return fmt.Errorf("coingecko TTL validation failed: %w", err)
	}

	if len(config.DefaultCoins) == 0 {
		return fmt.Errorf("default_coins cannot be empty")
	}

	if config.TrendingLimit < 1 || config.TrendingLimit > 15 {
		return fmt.Errorf("trending_limit must be between 1-15, got: %d", config.TrendingLimit)
	}

	return v.validateBudget(config.Budget)
}

// validateBudget validates an upstream request budget
func (v *Validator) validateBudget(config BudgetConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.Capacity <= 0 {
		return fmt.Errorf("budget capacity must be positive when enabled, got: %d", config.Capacity)
	}

	if config.RefillRate <= 0 {
		return fmt.Errorf("budget refill_rate must be positive when enabled, got: %d", config.RefillRate)
	}

	if config.RefillPeriod <= 0 {
		return fmt.Errorf("budget refill_period must be positive when enabled, got: %v", config.RefillPeriod)
	}

	return nil
}

// validateFearGreed validates the alternative.me upstream
func (v *Validator) validateFearGreed(config FearGreedConfig) error {
	if err := v.validateURL(config.BaseURL, "fear_greed base_url"); err != nil {
		return err
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("fear_greed timeout must be positive, got: %v", config.Timeout)
	}

	if err := v.validateTTL(config.TTL); err != nil {
		return fmt.Errorf("fear_greed TTL validation failed: %w", err)
	}

	return nil
}

// validateFunding validates both exchanges and the default symbols
func (v *Validator) validateFunding(config FundingConfig) error {
	if err := v.validateURL(config.BinanceBaseURL, "binance_base_url"); err != nil {
		return err
	}

	if err := v.validateURL(config.BybitBaseURL, "bybit_base_url"); err != nil {
		return err
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("funding timeout must be positive, got: %v", config.Timeout)
	}

	if err := v.validateTTL(config.TTL); err != nil {
		return fmt.Errorf("funding TTL validation failed: %w", err)
	}

	return v.validateSymbols(config.DefaultSymbols)
}

// validateSymbols checks the perpetual symbols, e.g. BTCUSDT
func (v *Validator) validateSymbols(symbols []string) error {
	if len(symbols) == 0 {
		return fmt.Errorf("default_symbols cannot be empty")
	}

	var invalid []string
	for _, symbol := range symbols {
		if !perpetualSymbol.MatchString(symbol) {
			invalid = append(invalid, symbol)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid symbol format: %v, expected upper-case perpetual symbols like BTCUSDT", invalid)
	}

	return nil
}

// validateTelegram only checks the retry settings; missing credentials disable delivery
func (v *Validator) validateTelegram(config TelegramConfig) error {
	if config.Timeout <= 0 {
		return fmt.Errorf("telegram timeout must be positive, got: %v", config.Timeout)
	}

	if config.MaxAttempts < 1 || config.MaxAttempts > 10 {
		return fmt.Errorf("telegram max_attempts must be between 1-10, got: %d", config.MaxAttempts)
	}

	if config.APIEndpoint != "" && !strings.Contains(config.APIEndpoint, "%s") {
		return fmt.Errorf("telegram api_endpoint must contain %%s placeholders for token and method")
	}

	return nil
}

// validateTTL checks a freshness window
func (v *Validator) validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("TTL must be positive, got: %v", ttl)
	}

	if ttl < minTTL {
		return fmt.Errorf("TTL too short: %v, min %v", ttl, minTTL)
	}

	if ttl > maxTTL {
		return fmt.Errorf("TTL too long: %v, max %v", ttl, maxTTL)
	}

	return nil
}

// validateLogging validates the logging settings
func (v *Validator) validateLogging(config LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(config.Level)) {
		return fmt.Errorf("invalid log level: %s, must be one of: %v", config.Level, validLevels)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, strings.ToLower(config.Format)) {
		return fmt.Errorf("invalid log format: %s, must be one of: %v", config.Format, validFormats)
	}

	return nil
}

// validateURL checks an http(s) URL with a host
func (v *Validator) validateURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %s, error: %v", fieldName, rawURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("invalid %s scheme: %s, must be http or https", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s must have a host", fieldName)
	}

	return nil
}

// contains reports whether slice holds item, ignoring case
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
