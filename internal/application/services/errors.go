package services

import (
	"errors"
	"fmt"
)

var (
	// ErrAlertNotFound is returned when deleting an unknown alert
	ErrAlertNotFound = errors.New("alert not found")
	// ErrPortfolioNotConfigured is returned when no positions are configured
	ErrPortfolioNotConfigured = errors.New("portfolio positions are not configured")
	// ErrPositionNotFound is returned when the portfolio holds no position in a coin
	ErrPositionNotFound = errors.New("position not found")
)

// ValidationError reports invalid client input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PortfolioConfigError reports configured positions that cannot be used
type PortfolioConfigError struct {
	Message string
	Err     error
}

func (e *PortfolioConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid portfolio configuration: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid portfolio configuration: %s", e.Message)
}

func (e *PortfolioConfigError) Unwrap() error {
	return e.Err
}

// MissingPriceError reports a held coin with no price in the resolved batch
type MissingPriceError struct {
	Coin   string
	CoinID string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("missing price for %s (%s)", e.Coin, e.CoinID)
}
