package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/metrics"
)

// CreateAlertInput is the payload of a new alert
type CreateAlertInput struct {
	Symbol         string                  `json:"symbol" validate:"required,max=12"`
	TargetPriceUSD float64                 `json:"target_price_usd" validate:"gt=0"`
	Direction      entities.AlertDirection `json:"direction" validate:"omitempty,oneof=above below"`
	Note           *string                 `json:"note" validate:"omitempty,max=120"`
}

// AlertService manages in-memory price alerts and evaluates them against live prices
type AlertService struct {
	repo     interfaces.AlertRepository
	prices   PriceResolver
	notifier interfaces.Notifier
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// NewAlertService creates the alert service
func NewAlertService(repo interfaces.AlertRepository, prices PriceResolver, notifier interfaces.Notifier) *AlertService {
	return &AlertService{
		repo:     repo,
		prices:   prices,
		notifier: notifier,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    newAlertID,
	}
}

func newAlertID() string {
	return "alt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// ListAlerts returns every alert, newest first
func (s *AlertService) ListAlerts(ctx context.Context) ([]*entities.Alert, error) {
	return s.repo.List(ctx)
}

// CreateAlert validates input and stores a new active alert
func (s *AlertService) CreateAlert(ctx context.Context, input CreateAlertInput) (*entities.Alert, error) {
	input.Symbol = strings.ToUpper(strings.TrimSpace(input.Symbol))
	if input.Direction == "" {
		input.Direction = entities.DirectionAbove
	}

	if err := s.validate.Struct(input); err != nil {
		verr := toValidationError(err)
		logging.Business().ValidationFailed(ctx, "alert", verr.Error())
		return nil, verr
	}

	if _, ok := entities.CoinIDForSymbol(input.Symbol); !ok {
		verr := &ValidationError{
			Field:   "symbol",
			Message: fmt.Sprintf("unsupported symbol %s, supported: %s", input.Symbol, strings.Join(entities.SupportedSymbols(), ", ")),
		}
		logging.Business().ValidationFailed(ctx, "alert", verr.Error())
		return nil, verr
	}

	alert := &entities.Alert{
		ID:             s.newID(),
		Symbol:         input.Symbol,
		TargetPriceUSD: roundTo(input.TargetPriceUSD, 4),
		Direction:      input.Direction,
		Note:           input.Note,
		IsActive:       true,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Save(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	logging.Info(ctx, "Price alert created", logging.Fields{
		"alert_id":  alert.ID,
		"symbol":    alert.Symbol,
		"direction": string(alert.Direction),
		"target":    alert.TargetPriceUSD,
	})
	return alert, nil
}

// DeleteAlert removes an alert, returning ErrAlertNotFound for unknown ids
func (s *AlertService) DeleteAlert(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}
	return nil
}

type triggeredAlert struct {
	alert entities.Alert
	price float64
}

// CheckAlerts evaluates every active alert once. Cached prices are accepted when the
// live fetch fails. Triggered alerts are deactivated and announced.
func (s *AlertService) CheckAlerts(ctx context.Context) (*entities.AlertCheckResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	active := make(map[string]struct{})
	coinSet := make(map[string]struct{})
	for _, alert := range all {
		if !alert.IsActive {
			continue
		}
		active[alert.ID] = struct{}{}
		if coinID, ok := entities.CoinIDForSymbol(alert.Symbol); ok {
			coinSet[coinID] = struct{}{}
		}
	}

	if len(active) == 0 {
		metrics.RecordAlertCheck(entities.DeliverySkipped)
		return &entities.AlertCheckResult{
			TriggeredAlertIDs: []string{},
			CheckedAt:         s.now(),
			Delivery:          entities.DeliverySkipped,
		}, nil
	}

	coinIDs := make([]string, 0, len(coinSet))
	for coinID := range coinSet {
		coinIDs = append(coinIDs, coinID)
	}
	sort.Strings(coinIDs)

	priceByCoin := make(map[string]float64, len(coinIDs))
	if len(coinIDs) > 0 {
		result := s.prices.ResolvePrices(ctx, coinIDs)
		if result.Failed() {
			return nil, result.Err
		}
		for _, row := range result.Value {
			if row.PriceUSD != nil {
				priceByCoin[row.ID] = *row.PriceUSD
			}
		}
	}

	checkedAt := s.now()
	var triggered []triggeredAlert
	err = s.repo.Update(ctx, func(alert *entities.Alert) {
		if _, ok := active[alert.ID]; !ok || !alert.IsActive {
			return
		}
		stamp := checkedAt
		alert.LastCheckedAt = &stamp

		coinID, _ := entities.CoinIDForSymbol(alert.Symbol)
		price, ok := priceByCoin[coinID]
		if !ok || !alert.IsTriggeredBy(price) {
			return
		}

		alert.IsActive = false
		alert.LastTriggeredAt = &stamp
		alert.TriggerCount++
		triggered = append(triggered, triggeredAlert{alert: *alert, price: price})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update alerts: %w", err)
	}

	sort.Slice(triggered, func(i, j int) bool {
		return triggered[i].alert.CreatedAt.Before(triggered[j].alert.CreatedAt)
	})

	delivery := entities.DeliveryNotTriggered
	ids := make([]string, 0, len(triggered))
	for _, t := range triggered {
		ids = append(ids, t.alert.ID)
		metrics.RecordAlertTriggered(t.alert.Symbol, string(t.alert.Direction))

		status := s.notifier.Notify(ctx, AlertMessage(t.alert, t.price))
		if status == entities.DeliverySent {
			delivery = entities.DeliverySent
		} else if delivery != entities.DeliverySent {
			delivery = status
		}
	}

	metrics.RecordAlertCheck(delivery)
	logging.Info(ctx, "Price alerts checked", logging.Fields{
		"checked_count":   len(active),
		"triggered_count": len(ids),
		"delivery":        delivery,
	})

	return &entities.AlertCheckResult{
		CheckedCount:      len(active),
		TriggeredCount:    len(ids),
		TriggeredAlertIDs: ids,
		CheckedAt:         checkedAt,
		Delivery:          delivery,
	}, nil
}

// AlertMessage renders the notification text of a triggered alert
func AlertMessage(alert entities.Alert, price float64) string {
	var b strings.Builder
	b.WriteString("BusyEdge price alert\n")
	fmt.Fprintf(&b, "Coin: %s\n", alert.Symbol)
	fmt.Fprintf(&b, "Price: $%s\n", formatUSD(price))
	fmt.Fprintf(&b, "Condition: %s $%s", alert.Direction, formatUSD(alert.TargetPriceUSD))
	if alert.Note != nil && *alert.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", *alert.Note)
	}
	return b.String()
}

// formatUSD renders v with four decimals and thousands separators
func formatUSD(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 4, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func toValidationError(err error) *ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: "must not be empty"}
	case "max":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("must be at most %s characters", fe.Param())}
	case "gt":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("must be greater than %s", fe.Param())}
	case "oneof":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("must be one of: %s", fe.Param())}
	default:
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed %s validation", fe.Tag())}
	}
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
