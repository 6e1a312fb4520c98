package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmazurov/fuelcard-backend/internal/models"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type stubAuth struct {
	client models.Client
	pair   services.TokenPair
	err    error
}

func (s *stubAuth) Login(ctx context.Context, login, password string) (models.Client, services.TokenPair, error) {
	return s.client, s.pair, s.err
}

func (s *stubAuth) Refresh(refreshToken string) (services.TokenPair, error) {
	return s.pair, s.err
}

func TestLogin_OK(t *testing.T) {
	h := NewAuthHandler(&stubAuth{
		client: models.Client{ID: 42, Name: "Acme LLC", Login: "acme", Admin: true},
		pair: services.TokenPair{
			AccessToken:  "acc-token",
			RefreshToken: "ref-token",
			ExpiresAt:    time.Date(2025, 6, 15, 12, 15, 0, 0, time.UTC),
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"login":"acme","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	// Tokens are top-level fields of the response.
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "acc-token", body["access_token"])
	assert.Equal(t, "ref-token", body["refresh_token"])
	assert.NotEmpty(t, body["expires_at"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 42.0, user["id"])
	assert.Equal(t, "acme", user["login"])
	assert.Equal(t, true, user["admin"])
}

func TestLogin_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuth{err: services.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"login":"acme","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuth{})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
