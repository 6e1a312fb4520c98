package services

import (
	"context"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/validate"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type CardService struct {
	r     repo.Cards
	audit *Auditor
}

func NewCardService(r repo.Cards, audit *Auditor) *CardService {
	return &CardService{r: r, audit: audit}
}

func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	return s.r.List(ctx)
}

func (s *CardService) Create(ctx context.Context, c models.Card) (models.Card, error) {
	if ef := validate.Required("card_code", c.CardCode); ef != nil {
		return models.Card{}, &ValidationError{Msg: ef.Error()}
	}
	if c.BalanceLiters < 0 {
		return models.Card{}, &ValidationError{Msg: "balance_liters must not be negative"}
	}
	created, err := s.r.Create(ctx, c)
	if err != nil {
		return models.Card{}, err
	}
	s.audit.Record("fuel_card", strconv.FormatInt(created.ID, 10), "created", map[string]any{"card_code": created.CardCode})
	return created, nil
}

func (s *CardService) Update(ctx context.Context, id int64, upd repo.CardUpdate) (models.Card, error) {
	if upd.BalanceLiters != nil && *upd.BalanceLiters < 0 {
		return models.Card{}, &ValidationError{Msg: "balance_liters must not be negative"}
	}
	updated, err := s.r.Update(ctx, id, upd)
	if err != nil {
		return models.Card{}, err
	}
	s.audit.Record("fuel_card", strconv.FormatInt(id, 10), "updated", nil)
	return updated, nil
}

func (s *CardService) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record("fuel_card", strconv.FormatInt(id, 10), "deleted", nil)
	return nil
}
