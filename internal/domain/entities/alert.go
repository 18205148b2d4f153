package entities

import "time"

// AlertDirection is the side of the target price that triggers an alert
type AlertDirection string

const (
	DirectionAbove AlertDirection = "above"
	DirectionBelow AlertDirection = "below"
)

// Alert is a one-shot price alert
type Alert struct {
	ID              string         `json:"id"`
	Symbol          string         `json:"symbol"`
	TargetPriceUSD  float64        `json:"target_price_usd"`
	Direction       AlertDirection `json:"direction"`
	Note            *string        `json:"note"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	LastCheckedAt   *time.Time     `json:"last_checked_at"`
	LastTriggeredAt *time.Time     `json:"last_triggered_at"`
	TriggerCount    int            `json:"trigger_count"`
}

// IsTriggeredBy reports whether price satisfies the alert condition
func (a *Alert) IsTriggeredBy(price float64) bool {
	if a.Direction == DirectionBelow {
		return price <= a.TargetPriceUSD
	}
	return price >= a.TargetPriceUSD
}

// Delivery statuses of an alert check
const (
	DeliverySkipped               = "skipped"
	DeliveryNotTriggered          = "not_triggered"
	DeliverySent                  = "sent"
	DeliverySendFailed            = "send_failed"
	DeliveryTelegramNotConfigured = "telegram_not_configured"
)

// AlertCheckResult summarises one evaluation pass over the active alerts
type AlertCheckResult struct {
	CheckedCount      int       `json:"checked_count"`
	TriggeredCount    int       `json:"triggered_count"`
	TriggeredAlertIDs []string  `json:"triggered_alert_ids"`
	CheckedAt         time.Time `json:"checked_at"`
	Delivery          string    `json:"delivery"`
}
