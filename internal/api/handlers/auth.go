package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type Authenticator interface {
	Login(ctx context.Context, login, password string) (models.Client, services.TokenPair, error)
	Refresh(refreshToken string) (services.TokenPair, error)
}

type AuthHandler struct {
	Svc Authenticator
}

func NewAuthHandler(svc Authenticator) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Admin bool   `json:"admin"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	User    loginUser `json:"user"`
	services.TokenPair
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	client, tokens, err := h.Svc.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User: loginUser{
			ID:    client.ID,
			Name:  client.Name,
			Login: client.Login,
			Admin: client.Admin,
		},
		TokenPair: tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	tokens, err := h.Svc.Refresh(req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokens)
}
