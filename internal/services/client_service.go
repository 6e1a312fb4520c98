package services

import (
	"context"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/auth"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type ClientService struct {
	r     repo.Clients
	audit *Auditor
}

func NewClientService(r repo.Clients, audit *Auditor) *ClientService {
	return &ClientService{r: r, audit: audit}
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.r.List(ctx)
}

func (s *ClientService) Create(ctx context.Context, c models.Client, password string) (models.Client, error) {
	if err := c.Validate(); err != nil {
		return models.Client{}, &ValidationError{Msg: err.Error()}
	}
	if password == "" {
		return models.Client{}, &ValidationError{Msg: "password required"}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Client{}, err
	}
	c.PasswordHash = hash

	created, err := s.r.Create(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	s.audit.Record("client", strconv.FormatInt(created.ID, 10), "created", nil)
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, c models.Client) (models.Client, error) {
	if err := c.Validate(); err != nil {
		return models.Client{}, &ValidationError{Msg: err.Error()}
	}
	updated, err := s.r.Update(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	s.audit.Record("client", strconv.FormatInt(updated.ID, 10), "updated", nil)
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record("client", strconv.FormatInt(id, 10), "deleted", nil)
	return nil
}
