package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

const (
	channelName        = "telegram"
	DefaultTimeout     = 10 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 500 * time.Millisecond
	maxRetryDelay      = 4 * time.Second
)

// Config holds the bot credentials and delivery tuning
type Config struct {
	BotToken    string
	ChatID      string
	APIEndpoint string
	Timeout     time.Duration
	MaxAttempts uint
	RetryDelay  time.Duration
}

// Notifier sends alert messages to a single Telegram chat
type Notifier struct {
	cfg        Config
	httpClient *http.Client

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

// NewNotifier creates a notifier. The bot is created on the first send.
func NewNotifier(cfg Config) *Notifier {
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = tgbotapi.APIEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &Notifier{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether both the token and the chat id are set
func (n *Notifier) Configured() bool {
	return strings.TrimSpace(n.cfg.BotToken) != "" && strings.TrimSpace(n.cfg.ChatID) != ""
}

// Notify delivers text and returns sent, send_failed or telegram_not_configured
func (n *Notifier) Notify(ctx context.Context, text string) string {
	if !n.Configured() {
		metrics.RecordNotification(channelName, entities.DeliveryTelegramNotConfigured)
		return entities.DeliveryTelegramNotConfigured
	}

	start := time.Now()
	err := retry.Do(
		func() error {
			bot, err := n.client()
			if err != nil {
				return err
			}
			msg, err := n.message(text)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			_, err = bot.Send(msg)
			return err
		},
		retry.Attempts(n.cfg.MaxAttempts),
		retry.Delay(n.cfg.RetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			logging.Warn(ctx, "Telegram send retry", logging.Fields{
				"service":      channelName,
				"attempt":      attempt + 1,
				"max_attempts": n.cfg.MaxAttempts,
				"error":        err.Error(),
			})
		}),
	)
	duration := float64(time.Since(start).Nanoseconds()) / 1e6

	if err != nil {
		logging.ExternalRequestFailed(ctx, channelName, "sendMessage", duration, 0, err)
		metrics.RecordNotification(channelName, entities.DeliverySendFailed)
		return entities.DeliverySendFailed
	}

	logging.ExternalRequest(ctx, channelName, "sendMessage", duration, http.StatusOK)
	metrics.RecordNotification(channelName, entities.DeliverySent)
	return entities.DeliverySent
}

// client returns the bot, creating it on first use. A failed creation is retried on the next call.
func (n *Notifier) client() (*tgbotapi.BotAPI, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bot != nil {
		return n.bot, nil
	}
	bot, err := tgbotapi.NewBotAPIWithClient(n.cfg.BotToken, n.cfg.APIEndpoint, n.httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	n.bot = bot
	return bot, nil
}

// message targets a numeric chat id or a @channel username
func (n *Notifier) message(text string) (tgbotapi.MessageConfig, error) {
	chat := strings.TrimSpace(n.cfg.ChatID)
	if strings.HasPrefix(chat, "@") {
		return tgbotapi.NewMessageToChannel(chat, text), nil
	}
	id, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("invalid telegram chat id %q: %w", chat, err)
	}
	return tgbotapi.NewMessage(id, text), nil
}
