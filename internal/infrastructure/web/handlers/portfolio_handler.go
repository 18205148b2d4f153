package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

// PortfolioReader prices the configured portfolio
type PortfolioReader interface {
	GetPortfolio(ctx context.Context) (*entities.Portfolio, error)
	GetPosition(ctx context.Context, coin string) (*entities.PortfolioPositionView, error)
}

// PortfolioHandler serves /api/portfolio
type PortfolioHandler struct {
	portfolio PortfolioReader
}

// NewPortfolioHandler creates the portfolio handler
func NewPortfolioHandler(portfolio PortfolioReader) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// GetPortfolio godoc
// @Summary Portfolio summary and positions
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.DataResponse[entities.Portfolio]
// @Failure 500 {object} dto.ErrorResponse "Invalid PORTFOLIO_POSITIONS_JSON"
// @Failure 502 {object} dto.ErrorResponse "A price is unavailable"
// @Failure 503 {object} dto.ErrorResponse "Portfolio not configured"
// @Router /api/portfolio [get]
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	portfolio, err := h.portfolio.GetPortfolio(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(portfolio))
}

// GetPosition godoc
// @Summary One portfolio position
// @Tags portfolio
// @Produce json
// @Param coin path string true "Ticker" example(BTC)
// @Success 200 {object} dto.DataResponse[entities.PortfolioPositionView]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/portfolio/{coin} [get]
func (h *PortfolioHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	position, err := h.portfolio.GetPosition(ctx, mux.Vars(r)["coin"])
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(position))
}
