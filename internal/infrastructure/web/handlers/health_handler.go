package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// Pinger checks a backing dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// BudgetReporter exposes what is left of a local request budget. Negative means disabled.
type BudgetReporter interface {
	Remaining() int
}

// HealthHandler handles the health check endpoints
type HealthHandler struct {
	store        Pinger
	cacheBackend string
	budgets      map[string]BudgetReporter
}

// NewHealthHandler creates a new instance of the health handler. budgets is keyed by
// upstream name and may be nil.
func NewHealthHandler(store Pinger, cacheBackend string, budgets map[string]BudgetReporter) *HealthHandler {
	return &HealthHandler{
		store:        store,
		cacheBackend: cacheBackend,
		budgets:      budgets,
	}
}

// Root godoc
// @Summary Welcome message
// @Tags health
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.WelcomeResponse{Message: "Welcome to BusyEdge API"})
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running and reports the local upstream budgets. Responds without checking dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"service": "running",
	}
	h.addBudgets(services)
	writeJSON(r.Context(), w, http.StatusOK, dto.NewHealthResponse("healthy", services))
}

// addBudgets adds one "<name>_budget" entry per upstream budget
func (h *HealthHandler) addBudgets(services map[string]string) {
	for name, budget := range h.budgets {
		remaining := -1
		if budget != nil {
			remaining = budget.Remaining()
		}
		if remaining < 0 {
			services[name+"_budget"] = "disabled"
			continue
		}
		services[name+"_budget"] = strconv.Itoa(remaining) + " requests remaining"
	}
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the cache store answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready to receive traffic"
// @Failure 503 {object} dto.HealthResponse "The cache store is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services := map[string]string{
		"cache_backend": h.cacheBackend,
	}

	if err := h.store.Ping(ctx); err != nil {
		logging.WarnWithError(ctx, "Readiness check failed", err, logging.Fields{
			"cache_backend": h.cacheBackend,
		})
		services["cache"] = "error: " + err.Error()
		writeJSON(ctx, w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}

	services["cache"] = "ready"
	services["service"] = "ready"
	writeJSON(ctx, w, http.StatusOK, dto.NewHealthResponse("ready", services))
}

// Status godoc
// @Summary API status
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/status [get]
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.StatusResponse{Status: "ok", Version: dto.APIVersion})
}
