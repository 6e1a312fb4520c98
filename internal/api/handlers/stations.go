package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type StationsHandler struct {
	Svc *services.StationService
}

func NewStationsHandler(svc *services.StationService) *StationsHandler {
	return &StationsHandler{Svc: svc}
}

func (h *StationsHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"stations": stations})
}

func (h *StationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Station
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	station, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"station": station})
}

func (h *StationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.Station
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	station, err := h.Svc.Update(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"station": station})
}

func (h *StationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "station id required")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
