package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Insufficient-balance and daily-limit errors carry their diagnostic
// amounts in the body; everything unexpected becomes a 500 with a
// message only.
func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *services.ValidationError
	var insufficient *services.InsufficientBalanceError
	var limit *services.DailyLimitError

	switch {
	case errors.As(err, &invalid):
		httpx.WriteError(w, http.StatusBadRequest, invalid.Msg)
	case errors.As(err, &insufficient):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":              "insufficient fuel balance",
			"current_balance":    insufficient.CurrentBalance,
			"requested_quantity": insufficient.RequestedQuantity,
		})
	case errors.As(err, &limit):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":              "daily limit exceeded",
			"daily_limit":        limit.DailyLimit,
			"consumed_today":     limit.ConsumedToday,
			"remaining_today":    limit.Remaining(),
			"requested_quantity": limit.RequestedQuantity,
		})
	case errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrStationNotFound),
		errors.Is(err, services.ErrOperationNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server error: "+err.Error())
	}
}
