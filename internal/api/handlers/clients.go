package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type ClientsHandler struct {
	Svc *services.ClientService
}

func NewClientsHandler(svc *services.ClientService) *ClientsHandler {
	return &ClientsHandler{Svc: svc}
}

func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

type clientRequest struct {
	ID       int64  `json:"id"`
	INN      string `json:"inn"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

func (req *clientRequest) model() models.Client {
	return models.Client{
		ID:      req.ID,
		INN:     req.INN,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Login:   req.Login,
		Admin:   req.Admin,
	}
}

func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	client, err := h.Svc.Create(r.Context(), req.model(), req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"client": client})
}

func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	client, err := h.Svc.Update(r.Context(), req.model())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"client": client})
}

func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "client id required")
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
