package services

import (
	"context"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/validate"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type FuelTypeService struct {
	r     repo.FuelTypes
	audit *Auditor
}

func NewFuelTypeService(r repo.FuelTypes, audit *Auditor) *FuelTypeService {
	return &FuelTypeService{r: r, audit: audit}
}

func (s *FuelTypeService) List(ctx context.Context) ([]models.FuelType, error) {
	return s.r.List(ctx)
}

func (s *FuelTypeService) Create(ctx context.Context, ft models.FuelType) (models.FuelType, error) {
	if ef := validate.Required("name", ft.Name); ef != nil {
		return models.FuelType{}, &ValidationError{Msg: ef.Error()}
	}
	created, err := s.r.Create(ctx, ft)
	if err != nil {
		return models.FuelType{}, err
	}
	s.audit.Record("fuel_type", strconv.FormatInt(created.ID, 10), "created", nil)
	return created, nil
}

func (s *FuelTypeService) Update(ctx context.Context, ft models.FuelType) (models.FuelType, error) {
	updated, err := s.r.Update(ctx, ft)
	if err != nil {
		return models.FuelType{}, err
	}
	s.audit.Record("fuel_type", strconv.FormatInt(updated.ID, 10), "updated", nil)
	return updated, nil
}

func (s *FuelTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record("fuel_type", strconv.FormatInt(id, 10), "deleted", nil)
	return nil
}
