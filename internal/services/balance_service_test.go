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

type stubCards struct {
	status models.CardStatus
	err    error

	gotCode  string
	gotStart time.Time
	gotEnd   time.Time
}

func (s *stubCards) StatusByCode(ctx context.Context, code string, dayStart, dayEnd time.Time) (models.CardStatus, error) {
	s.gotCode, s.gotStart, s.gotEnd = code, dayStart, dayEnd
	return s.status, s.err
}

func (s *stubCards) List(context.Context) ([]models.Card, error)          { return nil, nil }
func (s *stubCards) GetByCode(context.Context, string) (models.Card, error) {
	return models.Card{}, repo.ErrNotFound
}
func (s *stubCards) Create(context.Context, models.Card) (models.Card, error) {
	return models.Card{}, nil
}
func (s *stubCards) Update(context.Context, int64, repo.CardUpdate) (models.Card, error) {
	return models.Card{}, nil
}
func (s *stubCards) Delete(context.Context, int64) error { return nil }

func newBalanceService(cards repo.Cards) *BalanceService {
	svc := NewBalanceService(cards, testLoc)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, testLoc) }
	return svc
}

func TestStatus_RequiresCardCode(t *testing.T) {
	svc := newBalanceService(&stubCards{})

	var verr *ValidationError
	_, err := svc.Status(context.Background(), "  ")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "card_code")
}

func TestStatus_CardNotFound(t *testing.T) {
	svc := newBalanceService(&stubCards{err: repo.ErrNotFound})

	_, err := svc.Status(context.Background(), "UNKNOWN")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestStatus_QuotaAppliedToAvailableBalance(t *testing.T) {
	cards := &stubCards{status: models.CardStatus{
		CardCode:         "CARD-2",
		FuelType:         "AI-95",
		BalanceLiters:    85,
		DailyLimitLiters: 20,
		ConsumedToday:    15,
		ClientName:       "Acme LLC",
		ClientINN:        "7701234567",
	}}
	svc := newBalanceService(cards)

	st, err := svc.Status(context.Background(), "CARD-2")
	require.NoError(t, err)

	assert.Equal(t, "CARD-2", st.CardCode)
	assert.Equal(t, "AI-95", st.FuelType)
	assert.Equal(t, 85.0, st.BalanceLiters)
	assert.Equal(t, 5.0, st.AvailableBalance)
	assert.Equal(t, 20.0, st.DailyLimit)
	assert.Equal(t, "Acme LLC", st.ClientName)
	assert.Equal(t, "7701234567", st.ClientINN)
}

func TestStatus_NoLimitExposesFullBalance(t *testing.T) {
	cards := &stubCards{status: models.CardStatus{
		CardCode:      "CARD-1",
		BalanceLiters: 100,
		ConsumedToday: 40,
	}}
	svc := newBalanceService(cards)

	st, err := svc.Status(context.Background(), "CARD-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, st.AvailableBalance)
}

func TestStatus_QueriesBusinessDayWindow(t *testing.T) {
	cards := &stubCards{}
	svc := newBalanceService(cards)

	_, err := svc.Status(context.Background(), " CARD-1 ")
	require.NoError(t, err)

	assert.Equal(t, "CARD-1", cards.gotCode)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, testLoc), cards.gotStart)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, testLoc), cards.gotEnd)
}
