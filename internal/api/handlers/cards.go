package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type CardsHandler struct {
	Svc *services.CardService
}

func NewCardsHandler(svc *services.CardService) *CardsHandler {
	return &CardsHandler{Svc: svc}
}

func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

type cardCreateRequest struct {
	CardCode         string  `json:"card_code"`
	ClientID         *int64  `json:"client_id"`
	FuelTypeID       *int64  `json:"fuel_type_id"`
	BalanceLiters    float64 `json:"balance_liters"`
	DailyLimitLiters float64 `json:"daily_limit_liters"`
	PinCode          *string `json:"pin_code"`
}

func (h *CardsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cardCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	card, err := h.Svc.Create(r.Context(), models.Card{
		CardCode:         req.CardCode,
		ClientID:         req.ClientID,
		FuelTypeID:       req.FuelTypeID,
		BalanceLiters:    req.BalanceLiters,
		DailyLimitLiters: req.DailyLimitLiters,
		PinCode:          req.PinCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"card": card})
}

// cardUpdateRequest uses pointers so an administrative PUT touches only
// the fields it actually sent.
type cardUpdateRequest struct {
	ID               int64    `json:"id"`
	CardCode         *string  `json:"card_code"`
	ClientID         *int64   `json:"client_id"`
	FuelTypeID       *int64   `json:"fuel_type_id"`
	BalanceLiters    *float64 `json:"balance_liters"`
	DailyLimitLiters *float64 `json:"daily_limit_liters"`
	PinCode          *string  `json:"pin_code"`
}

func (h *CardsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ID == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "card id required")
		return
	}
	card, err := h.Svc.Update(r.Context(), req.ID, repo.CardUpdate{
		CardCode:         req.CardCode,
		ClientID:         req.ClientID,
		FuelTypeID:       req.FuelTypeID,
		BalanceLiters:    req.BalanceLiters,
		DailyLimitLiters: req.DailyLimitLiters,
		PinCode:          req.PinCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"card": card})
}

func (h *CardsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "card id required")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
