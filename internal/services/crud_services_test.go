package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmazurov/fuelcard-backend/internal/models"
)

type stubFuelTypes struct{}

func (s *stubFuelTypes) List(context.Context) ([]models.FuelType, error) { return nil, nil }
func (s *stubFuelTypes) Create(_ context.Context, ft models.FuelType) (models.FuelType, error) {
	return ft, nil
}
func (s *stubFuelTypes) Update(_ context.Context, ft models.FuelType) (models.FuelType, error) {
	return ft, nil
}
func (s *stubFuelTypes) Delete(context.Context, int64) error { return nil }

func TestCardCreate_RequiresCardCode(t *testing.T) {
	svc := NewCardService(&opCards{}, nil)

	var verr *ValidationError
	_, err := svc.Create(context.Background(), models.Card{CardCode: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "card_code: required", verr.Msg)
}

func TestCardCreate_RejectsNegativeBalance(t *testing.T) {
	svc := NewCardService(&opCards{}, nil)

	var verr *ValidationError
	_, err := svc.Create(context.Background(), models.Card{CardCode: "CARD-1", BalanceLiters: -1})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "balance_liters")
}

func TestStationCreate_RequiresName(t *testing.T) {
	svc := NewStationService(&opStations{}, nil)

	var verr *ValidationError
	_, err := svc.Create(context.Background(), models.Station{Code1C: "STATION-A"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name: required", verr.Msg)
}

func TestFuelTypeCreate_RequiresName(t *testing.T) {
	svc := NewFuelTypeService(&stubFuelTypes{}, nil)

	var verr *ValidationError
	_, err := svc.Create(context.Background(), models.FuelType{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name: required", verr.Msg)
}
