package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/auth"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type AuthService struct {
	clients repo.Clients
	tm      *auth.TokenManager
}

func NewAuthService(clients repo.Clients, tm *auth.TokenManager) *AuthService {
	return &AuthService{clients: clients, tm: tm}
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *AuthService) Login(ctx context.Context, login, password string) (models.Client, TokenPair, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return models.Client{}, TokenPair{}, &ValidationError{Msg: "login and password are required"}
	}

	c, err := s.clients.GetByLogin(ctx, login)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Client{}, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Client{}, TokenPair{}, err
	}
	if err := auth.VerifyPassword(password, c.PasswordHash); err != nil {
		return models.Client{}, TokenPair{}, ErrInvalidCredentials
	}

	access, refresh, exp, err := s.tm.GeneratePair(strconv.FormatInt(c.ID, 10), c.Admin)
	if err != nil {
		return models.Client{}, TokenPair{}, err
	}
	return c, TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	claims, isRefresh, err := s.tm.ParseAny(refreshToken)
	if err != nil || !isRefresh {
		return TokenPair{}, ErrInvalidCredentials
	}
	access, refresh, exp, err := s.tm.GeneratePair(claims.ClientID, claims.Admin)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}
