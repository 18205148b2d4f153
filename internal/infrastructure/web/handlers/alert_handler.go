package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/application/services"
	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// AlertManager manages price alerts
type AlertManager interface {
	ListAlerts(ctx context.Context) ([]*entities.Alert, error)
	CreateAlert(ctx context.Context, input services.CreateAlertInput) (*entities.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
	CheckAlerts(ctx context.Context) (*entities.AlertCheckResult, error)
}

// AlertHandler serves /api/alerts
type AlertHandler struct {
	alerts AlertManager
}

// NewAlertHandler creates the alert handler
func NewAlertHandler(alerts AlertManager) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// ListAlerts godoc
// @Summary List price alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.DataResponse[[]entities.Alert]
// @Router /api/alerts [get]
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	alerts, err := h.alerts.ListAlerts(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(alerts))
}

// CreateAlert godoc
// @Summary Create a price alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body dto.CreateAlertRequest true "Alert"
// @Success 200 {object} dto.DataResponse[entities.Alert]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/alerts [post]
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateAlertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logging.Business().ValidationFailed(ctx, "alert", err.Error())
		writeError(ctx, w, http.StatusBadRequest, CodeInvalidBody, "invalid JSON body: "+err.Error())
		return
	}

	alert, err := h.alerts.CreateAlert(ctx, req.ToInput())
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(alert))
}

// DeleteAlert godoc
// @Summary Delete a price alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert id"
// @Success 200 {object} dto.DataResponse[dto.DeleteAlertResult]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := h.alerts.DeleteAlert(ctx, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(dto.DeleteAlertResult{ID: id, Deleted: true}))
}

// CheckAlerts godoc
// @Summary Evaluate active alerts once
// @Description Triggered alerts are deactivated and sent to Telegram
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.DataResponse[entities.AlertCheckResult]
// @Failure 502 {object} dto.ErrorResponse "Prices unavailable with no cache"
// @Router /api/alerts/check [post]
func (h *AlertHandler) CheckAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.alerts.CheckAlerts(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dto.Wrap(result))
}
