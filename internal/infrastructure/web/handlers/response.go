package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/elvis-fintech/busyedge/internal/application/dto"
	"github.com/elvis-fintech/busyedge/internal/application/resilience"
	"github.com/elvis-fintech/busyedge/internal/application/services"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// Error codes of dto.ErrorResponse
const (
	CodeInvalidParameter       = "INVALID_PARAMETER"
	CodeInvalidBody            = "INVALID_BODY"
	CodeUpstreamUnavailable    = "UPSTREAM_UNAVAILABLE"
	CodePriceUnavailable       = "PRICE_UNAVAILABLE"
	CodeAlertNotFound          = "ALERT_NOT_FOUND"
	CodePositionNotFound       = "POSITION_NOT_FOUND"
	CodePortfolioNotConfigured = "PORTFOLIO_NOT_CONFIGURED"
	CodePortfolioConfigInvalid = "PORTFOLIO_CONFIG_INVALID"
	CodeInternalError          = "INTERNAL_ERROR"
)

const (
	maxRequestBodyBytes         = 64 << 10
	internalErrorMessage        = "internal server error"
	encodingFailureResponseBody = `{"error":"ENCODING_ERROR","message":"Failed to encode response"}`
)

// writeJSON writes data with statusCode
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			"status_code": statusCode,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodingFailureResponseBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(body, '\n'))
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, statusCode int, errorCode, message string) {
	writeJSON(ctx, w, statusCode, dto.NewErrorResponse(errorCode, message, strconv.Itoa(statusCode)))
}

// writeServiceError maps a service error to its status code
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		compositionErr *services.CompositionError
		validationErr  *services.ValidationError
		configErr      *services.PortfolioConfigError
		missingErr     *services.MissingPriceError
	)

	switch {
	case errors.As(err, &compositionErr):
		writeError(ctx, w, http.StatusBadGateway, CodeUpstreamUnavailable, compositionErr.Detail)
	case errors.As(err, &validationErr):
		writeError(ctx, w, http.StatusBadRequest, CodeInvalidParameter, validationErr.Error())
	case errors.Is(err, services.ErrAlertNotFound):
		writeError(ctx, w, http.StatusNotFound, CodeAlertNotFound, err.Error())
	case errors.Is(err, services.ErrPositionNotFound):
		writeError(ctx, w, http.StatusNotFound, CodePositionNotFound, err.Error())
	case errors.Is(err, services.ErrPortfolioNotConfigured):
		writeError(ctx, w, http.StatusServiceUnavailable, CodePortfolioNotConfigured, err.Error())
	case errors.As(err, &configErr):
		logging.ErrorWithError(ctx, "Portfolio configuration is invalid", err, nil)
		writeError(ctx, w, http.StatusInternalServerError, CodePortfolioConfigInvalid, configErr.Error())
	case errors.As(err, &missingErr):
		writeError(ctx, w, http.StatusBadGateway, CodePriceUnavailable, missingErr.Error())
	case errors.Is(err, resilience.ErrNoCacheAvailable):
		writeError(ctx, w, http.StatusBadGateway, CodeUpstreamUnavailable, err.Error())
	default:
		logging.ErrorWithError(ctx, "Unhandled service error", err, nil)
		writeError(ctx, w, http.StatusInternalServerError, CodeInternalError, internalErrorMessage)
	}
}

// decodeJSON reads a bounded JSON body into v, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
