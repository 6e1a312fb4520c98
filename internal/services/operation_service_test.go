package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type stubOps struct {
	created models.Operation
	updated models.Operation
	updErr  error
}

func (s *stubOps) List(context.Context) ([]models.Operation, error) { return nil, nil }
func (s *stubOps) Create(_ context.Context, op models.Operation) (models.Operation, error) {
	op.ID = 7
	s.created = op
	return op, nil
}
func (s *stubOps) Update(_ context.Context, op models.Operation) (models.Operation, error) {
	if s.updErr != nil {
		return models.Operation{}, s.updErr
	}
	s.updated = op
	return op, nil
}
func (s *stubOps) Delete(context.Context, int64) error { return nil }

type opCards struct {
	card models.Card
	err  error
}

func (s *opCards) GetByCode(context.Context, string) (models.Card, error) {
	return s.card, s.err
}
func (s *opCards) List(context.Context) ([]models.Card, error) { return nil, nil }
func (s *opCards) Create(context.Context, models.Card) (models.Card, error) {
	return models.Card{}, nil
}
func (s *opCards) Update(context.Context, int64, repo.CardUpdate) (models.Card, error) {
	return models.Card{}, nil
}
func (s *opCards) Delete(context.Context, int64) error { return nil }
func (s *opCards) StatusByCode(context.Context, string, time.Time, time.Time) (models.CardStatus, error) {
	return models.CardStatus{}, repo.ErrNotFound
}

type opStations struct {
	station models.Station
	err     error
}

func (s *opStations) GetByName(context.Context, string) (models.Station, error) {
	return s.station, s.err
}
func (s *opStations) List(context.Context) ([]models.Station, error) { return nil, nil }
func (s *opStations) GetByCode(context.Context, string) (models.Station, error) {
	return models.Station{}, repo.ErrNotFound
}
func (s *opStations) Create(context.Context, models.Station) (models.Station, error) {
	return models.Station{}, nil
}
func (s *opStations) Update(context.Context, models.Station) (models.Station, error) {
	return models.Station{}, nil
}
func (s *opStations) Delete(context.Context, int64) error { return nil }

func newOperationService(ops *stubOps, cards *opCards, stations *opStations) *OperationService {
	svc := NewOperationService(ops, cards, stations, nil, testLoc)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, testLoc) }
	return svc
}

func TestOperationCreate_ResolvesCardAndStation(t *testing.T) {
	ops := &stubOps{}
	svc := newOperationService(ops,
		&opCards{card: models.Card{ID: 5, CardCode: "CARD-1"}},
		&opStations{station: models.Station{ID: 9, Name: "Station A"}})

	op, err := svc.Create(context.Background(), OperationInput{
		CardCode:      "CARD-1",
		StationName:   "Station A",
		OperationDate: "2025-06-14 10:30",
		OperationType: "refuel",
		Quantity:      10,
		Price:         50,
		Amount:        500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), op.ID)
	assert.Equal(t, int64(5), ops.created.FuelCardID)
	require.NotNil(t, ops.created.StationID)
	assert.Equal(t, int64(9), *ops.created.StationID)
	assert.Equal(t, time.Date(2025, 6, 14, 10, 30, 0, 0, testLoc), ops.created.OperationDate)
}

func TestOperationCreate_UnknownCard(t *testing.T) {
	svc := newOperationService(&stubOps{}, &opCards{err: repo.ErrNotFound}, &opStations{})

	_, err := svc.Create(context.Background(), OperationInput{CardCode: "NOPE"})
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestOperationCreate_UnknownStationFails(t *testing.T) {
	svc := newOperationService(&stubOps{},
		&opCards{card: models.Card{ID: 5, CardCode: "CARD-1"}},
		&opStations{err: repo.ErrNotFound})

	_, err := svc.Create(context.Background(), OperationInput{
		CardCode: "CARD-1", StationName: "Ghost Station",
	})
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestOperationCreate_StationOptional(t *testing.T) {
	ops := &stubOps{}
	svc := newOperationService(ops,
		&opCards{card: models.Card{ID: 5, CardCode: "CARD-1"}},
		&opStations{err: repo.ErrNotFound})

	_, err := svc.Create(context.Background(), OperationInput{CardCode: "CARD-1"})
	require.NoError(t, err)
	assert.Nil(t, ops.created.StationID)
}

func TestOperationUpdate_NotFound(t *testing.T) {
	svc := newOperationService(&stubOps{updErr: repo.ErrNotFound},
		&opCards{card: models.Card{ID: 5, CardCode: "CARD-1"}}, &opStations{})

	_, err := svc.Update(context.Background(), OperationInput{ID: 99, CardCode: "CARD-1"})
	assert.ErrorIs(t, err, ErrOperationNotFound)
}

func TestParseDate(t *testing.T) {
	svc := newOperationService(&stubOps{}, &opCards{}, &opStations{})
	fallback := time.Date(2025, 6, 15, 12, 0, 0, 0, testLoc)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"html datetime-local", "2025-06-14T10:30", time.Date(2025, 6, 14, 10, 30, 0, 0, testLoc)},
		{"minute precision", "2025-06-14 10:30", time.Date(2025, 6, 14, 10, 30, 0, 0, testLoc)},
		{"second precision", "2025-06-14 10:30:45", time.Date(2025, 6, 14, 10, 30, 45, 0, testLoc)},
		{"empty falls back to now", "", fallback},
		{"garbage falls back to now", "yesterday", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.parseDate(tt.raw))
		})
	}
}
