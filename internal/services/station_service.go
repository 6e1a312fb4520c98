package services

import (
	"context"
	"strconv"

	"github.com/kmazurov/fuelcard-backend/internal/api/validate"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type StationService struct {
	r     repo.Stations
	audit *Auditor
}

func NewStationService(r repo.Stations, audit *Auditor) *StationService {
	return &StationService{r: r, audit: audit}
}

func (s *StationService) List(ctx context.Context) ([]models.Station, error) {
	return s.r.List(ctx)
}

func (s *StationService) Create(ctx context.Context, st models.Station) (models.Station, error) {
	if ef := validate.Required("name", st.Name); ef != nil {
		return models.Station{}, &ValidationError{Msg: ef.Error()}
	}
	created, err := s.r.Create(ctx, st)
	if err != nil {
		return models.Station{}, err
	}
	s.audit.Record("station", strconv.FormatInt(created.ID, 10), "created", nil)
	return created, nil
}

func (s *StationService) Update(ctx context.Context, st models.Station) (models.Station, error) {
	updated, err := s.r.Update(ctx, st)
	if err != nil {
		return models.Station{}, err
	}
	s.audit.Record("station", strconv.FormatInt(updated.ID, 10), "updated", nil)
	return updated, nil
}

func (s *StationService) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record("station", strconv.FormatInt(id, 10), "deleted", nil)
	return nil
}
