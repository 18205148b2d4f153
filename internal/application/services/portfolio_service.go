package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

// PortfolioDataSource labels portfolio responses
const PortfolioDataSource = "coingecko+portfolio_env"

// PortfolioService prices the positions configured in PORTFOLIO_POSITIONS_JSON
type PortfolioService struct {
	positionsJSON string
	prices        PriceResolver
	now           func() time.Time
}

// NewPortfolioService creates the service from the raw positions JSON
func NewPortfolioService(positionsJSON string, prices PriceResolver) *PortfolioService {
	return &PortfolioService{
		positionsJSON: positionsJSON,
		prices:        prices,
		now:           time.Now,
	}
}

// ParseHoldings validates the positions JSON: a non-empty array of
// {symbol, quantity, avg_cost_usd} with supported symbols and positive numbers
func ParseHoldings(raw string) ([]entities.PortfolioHolding, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrPortfolioNotConfigured
	}
	if !gjson.Valid(raw) {
		return nil, &PortfolioConfigError{Message: "positions must be a JSON array"}
	}

	payload := gjson.Parse(raw)
	if !payload.IsArray() || len(payload.Array()) == 0 {
		return nil, &PortfolioConfigError{Message: "positions must be a non-empty array"}
	}

	items := payload.Array()
	holdings := make([]entities.PortfolioHolding, 0, len(items))
	for i, item := range items {
		n := i + 1
		if !item.IsObject() {
			return nil, &PortfolioConfigError{Message: fmt.Sprintf("item %d is not an object", n)}
		}

		symbol := strings.ToUpper(strings.TrimSpace(item.Get("symbol").String()))
		coinID, ok := entities.CoinIDForSymbol(symbol)
		if !ok {
			return nil, &PortfolioConfigError{
				Message: fmt.Sprintf("unsupported symbol %s, supported: %s", symbol, strings.Join(entities.SupportedSymbols(), ", ")),
			}
		}

		quantity, qErr := numberField(item.Get("quantity"))
		avgCost, cErr := numberField(item.Get("avg_cost_usd"))
		if qErr != nil || cErr != nil {
			return nil, &PortfolioConfigError{Message: fmt.Sprintf("item %d quantity / avg_cost_usd must be numbers", n)}
		}
		if quantity <= 0 || avgCost <= 0 {
			return nil, &PortfolioConfigError{Message: fmt.Sprintf("item %d quantity / avg_cost_usd must be greater than 0", n)}
		}

		holdings = append(holdings, entities.PortfolioHolding{
			Coin:       symbol,
			CoinID:     coinID,
			Quantity:   quantity,
			AvgCostUSD: avgCost,
		})
	}
	return holdings, nil
}

func numberField(res gjson.Result) (float64, error) {
	switch res.Type {
	case gjson.Number:
		return res.Float(), nil
	case gjson.String:
		return strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
	default:
		return 0, fmt.Errorf("not a number: %s", res.Raw)
	}
}

// GetPortfolio prices every holding. Cached prices are accepted when the live fetch fails.
func (s *PortfolioService) GetPortfolio(ctx context.Context) (*entities.Portfolio, error) {
	holdings, err := ParseHoldings(s.positionsJSON)
	if err != nil {
		return nil, err
	}

	coinIDs := make([]string, 0, len(holdings))
	for _, h := range holdings {
		coinIDs = append(coinIDs, h.CoinID)
	}

	result := s.prices.ResolvePrices(ctx, coinIDs)
	if result.Failed() {
		return nil, result.Err
	}
	if result.IsStale() {
		logging.Warn(ctx, "Portfolio priced from cached quotes", logging.Fields{
			"fallback_reason": result.Reason,
		})
	}

	priceByCoin := make(map[string]float64, len(result.Value))
	for _, row := range result.Value {
		if row.PriceUSD != nil {
			priceByCoin[row.ID] = *row.PriceUSD
		}
	}

	positions := make([]entities.PortfolioPosition, 0, len(holdings))
	for _, h := range holdings {
		price, ok := priceByCoin[h.CoinID]
		if !ok {
			return nil, &MissingPriceError{Coin: h.Coin, CoinID: h.CoinID}
		}
		positions = append(positions, pricePosition(h, price))
	}

	var totalCost, totalValue float64
	for _, p := range positions {
		totalCost += p.CostBasisUSD
		totalValue += p.MarketValueUSD
	}
	totalPnL := totalValue - totalCost

	for i := range positions {
		if totalValue > 0 {
			positions[i].AllocationPct = roundTo(positions[i].MarketValueUSD/totalValue*100, 2)
		}
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].MarketValueUSD > positions[j].MarketValueUSD
	})

	summary := entities.PortfolioSummary{
		TotalPositions: len(positions),
		TotalCostUSD:   roundTo(totalCost, 2),
		TotalValueUSD:  roundTo(totalValue, 2),
		TotalPnLUSD:    roundTo(totalPnL, 2),
	}
	if totalCost > 0 {
		summary.TotalPnLPct = roundTo(totalPnL/totalCost*100, 2)
	}

	return &entities.Portfolio{
		Positions:  positions,
		Summary:    summary,
		DataSource: PortfolioDataSource,
		IsMock:     false,
		UpdatedAt:  utils.RFC3339UTC(s.now()),
	}, nil
}

// GetPosition returns the position in coin (a ticker, case-insensitive)
func (s *PortfolioService) GetPosition(ctx context.Context, coin string) (*entities.PortfolioPositionView, error) {
	portfolio, err := s.GetPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	target := strings.ToUpper(strings.TrimSpace(coin))
	for _, p := range portfolio.Positions {
		if p.Coin == target {
			return &entities.PortfolioPositionView{Position: p, UpdatedAt: portfolio.UpdatedAt}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPositionNotFound, target)
}

func pricePosition(h entities.PortfolioHolding, price float64) entities.PortfolioPosition {
	costBasis := h.Quantity * h.AvgCostUSD
	marketValue := h.Quantity * price
	pnl := marketValue - costBasis

	var pnlPct float64
	if costBasis > 0 {
		pnlPct = pnl / costBasis * 100
	}

	return entities.PortfolioPosition{
		Coin:            h.Coin,
		Quantity:        h.Quantity,
		AvgCostUSD:      roundTo(h.AvgCostUSD, 6),
		CurrentPriceUSD: roundTo(price, 6),
		CostBasisUSD:    roundTo(costBasis, 2),
		MarketValueUSD:  roundTo(marketValue, 2),
		PnLUSD:          roundTo(pnl, 2),
		PnLPct:          roundTo(pnlPct, 2),
	}
}
