package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type FuelTypesHandler struct {
	Svc *services.FuelTypeService
}

func NewFuelTypesHandler(svc *services.FuelTypeService) *FuelTypesHandler {
	return &FuelTypesHandler{Svc: svc}
}

func (h *FuelTypesHandler) List(w http.ResponseWriter, r *http.Request) {
	fuelTypes, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if fuelTypes == nil {
		fuelTypes = []models.FuelType{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"fuel_types": fuelTypes})
}

func (h *FuelTypesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.FuelType
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	ft, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"fuel_type": ft})
}

func (h *FuelTypesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.FuelType
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	ft, err := h.Svc.Update(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"fuel_type": ft})
}

func (h *FuelTypesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "fuel type id required")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
