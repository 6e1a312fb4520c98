package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

// operationDateFormat is the timestamp format of the 1C integration
// contract, rendered in the business timezone.
const operationDateFormat = "2006-01-02 15:04:05"

type BalanceProvider interface {
	Status(ctx context.Context, cardCode string) (services.CardStatus, error)
}

type Refueler interface {
	Refuel(ctx context.Context, req services.RefuelRequest) (services.RefuelResult, error)
}

// IntegrationHandler serves the two endpoints external accounting
// systems call: the balance inquiry and the refuel transaction.
type IntegrationHandler struct {
	Balance BalanceProvider
	Refuels Refueler
}

func NewIntegrationHandler(balance BalanceProvider, refuels Refueler) *IntegrationHandler {
	return &IntegrationHandler{Balance: balance, Refuels: refuels}
}

func (h *IntegrationHandler) CardStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Balance.Status(r.Context(), r.URL.Query().Get("card_code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, status)
}

type refuelRequest struct {
	CardCode       string  `json:"card_code"`
	Quantity       float64 `json:"quantity"`
	Price          float64 `json:"price"`
	Code1C         string  `json:"code_1c"`
	StationName    string  `json:"station_name"`
	Comment        string  `json:"comment"`
	IdempotencyKey string  `json:"idempotency_key"`
}

type refuelResponse struct {
	Success         bool    `json:"success"`
	CardCode        string  `json:"card_code"`
	OperationType   string  `json:"operation_type"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	Amount          float64 `json:"amount"`
	PreviousBalance float64 `json:"previous_balance"`
	NewBalance      float64 `json:"new_balance"`
	StationName     string  `json:"station_name"`
	OperationDate   string  `json:"operation_date"`
}

func (h *IntegrationHandler) Refuel(w http.ResponseWriter, r *http.Request) {
	var req refuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	// Callers may also supply the idempotency key as a header.
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = r.Header.Get("Idempotency-Key")
	}

	res, err := h.Refuels.Refuel(r.Context(), services.RefuelRequest{
		CardCode:       req.CardCode,
		Quantity:       req.Quantity,
		Price:          req.Price,
		Code1C:         req.Code1C,
		StationName:    req.StationName,
		Comment:        req.Comment,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, refuelResponse{
		Success:         true,
		CardCode:        res.CardCode,
		OperationType:   "refuel",
		Quantity:        res.Quantity,
		Price:           res.Price,
		Amount:          res.Amount,
		PreviousBalance: res.PreviousBalance,
		NewBalance:      res.NewBalance,
		StationName:     res.StationName,
		OperationDate:   res.OperationDate.Format(operationDateFormat),
	})
}
