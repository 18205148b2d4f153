package interfaces

import "context"

// Notifier delivers a text message and reports a delivery status
// (sent, send_failed or telegram_not_configured)
type Notifier interface {
	Notify(ctx context.Context, text string) string
}

// Narrator writes a short natural-language summary for a prompt
type Narrator interface {
	Enabled() bool
	Summarize(ctx context.Context, prompt string) (string, error)
}
