package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

// OperationService is the administrative journal: free-form operation
// records created and edited by hand. It never touches card balances;
// that is the refuel service's job.
type OperationService struct {
	ops      repo.Operations
	cards    repo.Cards
	stations repo.Stations
	audit    *Auditor
	loc      *time.Location
	now      func() time.Time
}

func NewOperationService(ops repo.Operations, cards repo.Cards, stations repo.Stations, audit *Auditor, loc *time.Location) *OperationService {
	return &OperationService{ops: ops, cards: cards, stations: stations, audit: audit, loc: loc, now: time.Now}
}

type OperationInput struct {
	ID            int64
	CardCode      string
	StationName   string
	OperationDate string
	OperationType string
	Quantity      float64
	Price         float64
	Amount        float64
	Comment       string
}

func (s *OperationService) List(ctx context.Context) ([]models.Operation, error) {
	return s.ops.List(ctx)
}

func (s *OperationService) Create(ctx context.Context, in OperationInput) (models.Operation, error) {
	op, err := s.resolve(ctx, in)
	if err != nil {
		return models.Operation{}, err
	}
	created, err := s.ops.Create(ctx, op)
	if err != nil {
		return models.Operation{}, err
	}
	created.CardCode = in.CardCode
	created.StationName = in.StationName
	s.audit.Record("operation", strconv.FormatInt(created.ID, 10), "created", map[string]any{"card_code": in.CardCode})
	return created, nil
}

func (s *OperationService) Update(ctx context.Context, in OperationInput) (models.Operation, error) {
	op, err := s.resolve(ctx, in)
	if err != nil {
		return models.Operation{}, err
	}
	op.ID = in.ID
	updated, err := s.ops.Update(ctx, op)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Operation{}, ErrOperationNotFound
	}
	if err != nil {
		return models.Operation{}, err
	}
	updated.CardCode = in.CardCode
	updated.StationName = in.StationName
	s.audit.Record("operation", strconv.FormatInt(updated.ID, 10), "updated", nil)
	return updated, nil
}

func (s *OperationService) Delete(ctx context.Context, id int64) error {
	if err := s.ops.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record("operation", strconv.FormatInt(id, 10), "deleted", nil)
	return nil
}

func (s *OperationService) resolve(ctx context.Context, in OperationInput) (models.Operation, error) {
	card, err := s.cards.GetByCode(ctx, strings.TrimSpace(in.CardCode))
	if errors.Is(err, repo.ErrNotFound) {
		return models.Operation{}, ErrCardNotFound
	}
	if err != nil {
		return models.Operation{}, err
	}

	op := models.Operation{
		FuelCardID:    card.ID,
		OperationDate: s.parseDate(in.OperationDate),
		OperationType: in.OperationType,
		Quantity:      in.Quantity,
		Price:         in.Price,
		Amount:        in.Amount,
		Comment:       in.Comment,
	}

	// Station is optional for manual records, but a named station must
	// exist: unresolved references fail instead of silently dropping to
	// NULL.
	if name := strings.TrimSpace(in.StationName); name != "" {
		station, err := s.stations.GetByName(ctx, name)
		if errors.Is(err, repo.ErrNotFound) {
			return models.Operation{}, ErrStationNotFound
		}
		if err != nil {
			return models.Operation{}, err
		}
		op.StationID = &station.ID
	}
	return op, nil
}

var operationDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// parseDate accepts the date formats the admin UI has historically
// sent; anything unparsable falls back to the current business time.
func (s *OperationService) parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range operationDateLayouts {
			if t, err := time.ParseInLocation(layout, raw, s.loc); err == nil {
				return t
			}
		}
	}
	return s.now().In(s.loc)
}
