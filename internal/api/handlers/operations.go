package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

// listDateFormat is what the admin journal has always shown: minute
// precision, business-local time.
const listDateFormat = "2006-01-02 15:04"

type OperationsHandler struct {
	Svc *services.OperationService
}

func NewOperationsHandler(svc *services.OperationService) *OperationsHandler {
	return &OperationsHandler{Svc: svc}
}

type operationJSON struct {
	ID            int64   `json:"id"`
	CardCode      string  `json:"card_code"`
	StationName   string  `json:"station_name"`
	OperationDate string  `json:"operation_date"`
	OperationType string  `json:"operation_type"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
	Comment       string  `json:"comment"`
	FuelCardID    int64   `json:"fuel_card_id"`
	StationID     *int64  `json:"station_id"`
}

func toOperationJSON(op models.Operation) operationJSON {
	return operationJSON{
		ID:            op.ID,
		CardCode:      op.CardCode,
		StationName:   op.StationName,
		OperationDate: op.OperationDate.Format(listDateFormat),
		OperationType: op.OperationType,
		Quantity:      op.Quantity,
		Price:         op.Price,
		Amount:        op.Amount,
		Comment:       op.Comment,
		FuelCardID:    op.FuelCardID,
		StationID:     op.StationID,
	}
}

func (h *OperationsHandler) List(w http.ResponseWriter, r *http.Request) {
	ops, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]operationJSON, 0, len(ops))
	for _, op := range ops {
		out = append(out, toOperationJSON(op))
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"operations": out})
}

type operationRequest struct {
	ID            int64   `json:"id"`
	CardCode      string  `json:"card_code"`
	StationName   string  `json:"station_name"`
	OperationDate string  `json:"operation_date"`
	OperationType string  `json:"operation_type"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Amount        float64 `json:"amount"`
	Comment       string  `json:"comment"`
}

func (req *operationRequest) input() services.OperationInput {
	return services.OperationInput{
		ID:            req.ID,
		CardCode:      req.CardCode,
		StationName:   req.StationName,
		OperationDate: req.OperationDate,
		OperationType: req.OperationType,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Amount:        req.Amount,
		Comment:       req.Comment,
	}
}

func (h *OperationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	op, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"operation": toOperationJSON(op)})
}

func (h *OperationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ID == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "operation id required")
		return
	}
	op, err := h.Svc.Update(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"operation": toOperationJSON(op)})
}

func (h *OperationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "operation id required")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
