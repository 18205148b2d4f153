package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables
func (l *Loader) Load() (*Config, error) {
	l.setupViper()

	if err := l.v.ReadInConfig(); err != nil {
		// Without configs/config.yaml only env vars and defaults apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/busyedge")

	// BUSYEDGE_COINGECKO_TTL=2m overrides coingecko.ttl
	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("BUSYEDGE")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()
}

// bindEnvVars maps the conventional unprefixed variables to configuration keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":              "PORT",
		"cache.backend":            "CACHE_BACKEND",
		"cache.redis.addr":         "REDIS_ADDR",
		"cache.redis.password":     "REDIS_PASSWORD",
		"cache.redis.db":           "REDIS_DB",
		"cache.redis.prefix":       "REDIS_PREFIX",
		"coingecko.base_url":       "COINGECKO_BASE_URL",
		"coingecko.ttl":            "COINGECKO_TTL",
		"fear_greed.base_url":      "FEAR_GREED_BASE_URL",
		"funding.binance_base_url": "BINANCE_BASE_URL",
		"funding.bybit_base_url":   "BYBIT_BASE_URL",
		"telegram.bot_token":       "TELEGRAM_BOT_TOKEN",
		"telegram.chat_id":         "TELEGRAM_CHAT_ID",
		"openai.api_key":           "OPENAI_API_KEY",
		"openai.base_url":          "OPENAI_BASE_URL",
		"openai.model":             "OPENAI_MODEL",
		"alerts.check_interval":    "ALERT_CHECK_INTERVAL",
		"portfolio.positions_json": "PORTFOLIO_POSITIONS_JSON",
		"logging.level":            "LOG_LEVEL",
		"logging.format":           "LOG_FORMAT",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// overrideWithEnvVars applies the comma separated list variables
func (l *Loader) overrideWithEnvVars(config *Config) {
	if coins := splitList(os.Getenv("DEFAULT_COINS"), strings.ToLower); len(coins) > 0 {
		config.CoinGecko.DefaultCoins = coins
	}
	if symbols := splitList(os.Getenv("FUNDING_SYMBOLS"), strings.ToUpper); len(symbols) > 0 {
		config.Funding.DefaultSymbols = symbols
	}
	if origins := splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), nil); len(origins) > 0 {
		config.CORS.AllowedOrigins = origins
	}
}

func splitList(raw string, normalize func(string) string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if normalize != nil {
			item = normalize(item)
		}
		out = append(out, item)
	}
	return out
}

// GetEnvironment returns the deployment environment, "development" when unset
func GetEnvironment() string {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENVIRONMENT"))
	}
	if env == "" {
		env = "development"
	}
	return env
}
