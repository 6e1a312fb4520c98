package services

import (
	"context"
	"errors"
	"strings"
	"time"

	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

// BalanceService answers the 1C balance inquiry. Read-only; the balance
// and the daily consumption come from one store snapshot.
type BalanceService struct {
	cards repo.Cards
	loc   *time.Location
	now   func() time.Time
}

func NewBalanceService(cards repo.Cards, loc *time.Location) *BalanceService {
	return &BalanceService{cards: cards, loc: loc, now: time.Now}
}

type CardStatus struct {
	CardCode         string  `json:"card_code"`
	FuelType         string  `json:"fuel_type"`
	BalanceLiters    float64 `json:"balance_liters"`
	AvailableBalance float64 `json:"available_balance"`
	DailyLimit       float64 `json:"daily_limit"`
	ClientName       string  `json:"client_name"`
	ClientINN        string  `json:"client_inn"`
}

func (s *BalanceService) Status(ctx context.Context, cardCode string) (CardStatus, error) {
	cardCode = strings.TrimSpace(cardCode)
	if cardCode == "" {
		return CardStatus{}, &ValidationError{Msg: "card_code is required"}
	}

	dayStart, dayEnd := dayBounds(s.now().In(s.loc))
	st, err := s.cards.StatusByCode(ctx, cardCode, dayStart, dayEnd)
	if errors.Is(err, repo.ErrNotFound) {
		return CardStatus{}, ErrCardNotFound
	}
	if err != nil {
		return CardStatus{}, err
	}

	return CardStatus{
		CardCode:         st.CardCode,
		FuelType:         st.FuelType,
		BalanceLiters:    st.BalanceLiters,
		AvailableBalance: availableBalance(st.BalanceLiters, st.DailyLimitLiters, st.ConsumedToday),
		DailyLimit:       st.DailyLimitLiters,
		ClientName:       st.ClientName,
		ClientINN:        st.ClientINN,
	}, nil
}
