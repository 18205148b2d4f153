package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

const (
	serviceName      = "openai"
	endpoint         = "/chat/completions"
	DefaultModel     = goopenai.GPT4oMini
	DefaultTimeout   = 15 * time.Second
	DefaultMaxTokens = 160
	systemPrompt     = "You are a concise crypto market analyst writing for a trading dashboard."
)

// ErrEmptyCompletion is returned when the model answers with no choices
var ErrEmptyCompletion = errors.New("openai returned no completion choices")

// Config holds the chat completion settings
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// Narrator summarises analysis prompts with a chat completion
type Narrator struct {
	client    *goopenai.Client
	model     string
	maxTokens int
	enabled   bool
}

// NewNarrator creates a narrator. It is disabled when no API key is set.
func NewNarrator(cfg Config) *Narrator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Narrator{
		client:    goopenai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		enabled:   strings.TrimSpace(cfg.APIKey) != "",
	}
}

// Enabled reports whether an API key is configured
func (n *Narrator) Enabled() bool {
	return n != nil && n.enabled
}

// Summarize asks the model for a short summary of prompt
func (n *Narrator) Summarize(ctx context.Context, prompt string) (string, error) {
	if !n.Enabled() {
		return "", errors.New("openai narrator is not configured")
	}

	start := time.Now()
	resp, err := n.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: n.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   n.maxTokens,
		Temperature: 0.3,
	})
	duration := time.Since(start)
	durationMs := float64(duration.Nanoseconds()) / 1e6

	if err != nil {
		status := 0
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.HTTPStatusCode
		}
		metrics.RecordExternalAPICall(serviceName, endpoint, status, duration.Seconds())
		logging.ExternalRequestFailed(ctx, serviceName, endpoint, durationMs, status, err)
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	metrics.RecordExternalAPICall(serviceName, endpoint, http.StatusOK, duration.Seconds())
	logging.ExternalRequest(ctx, serviceName, endpoint, durationMs, http.StatusOK)

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
