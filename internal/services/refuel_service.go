package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/metrics"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

// RefuelService applies refuels: one database transaction covering the
// card lock, the balance check and debit, the quota check, and the
// ledger insert. Any failure rolls the whole unit back.
type RefuelService struct {
	refuels repo.Refuels
	audit   *Auditor
	loc     *time.Location
	now     func() time.Time
}

func NewRefuelService(refuels repo.Refuels, audit *Auditor, loc *time.Location) *RefuelService {
	return &RefuelService{refuels: refuels, audit: audit, loc: loc, now: time.Now}
}

type RefuelRequest struct {
	CardCode       string
	Quantity       float64
	Price          float64
	Code1C         string
	StationName    string
	Comment        string
	IdempotencyKey string
}

type RefuelResult struct {
	CardCode        string
	Quantity        float64
	Price           float64
	Amount          float64
	PreviousBalance float64
	NewBalance      float64
	StationName     string
	OperationDate   time.Time
	// Replayed is set when an idempotency key matched an already
	// recorded refuel and no new debit happened.
	Replayed bool
}

func (s *RefuelService) Refuel(ctx context.Context, req RefuelRequest) (RefuelResult, error) {
	req.CardCode = strings.TrimSpace(req.CardCode)
	req.Code1C = strings.TrimSpace(req.Code1C)
	req.StationName = strings.TrimSpace(req.StationName)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)

	if req.CardCode == "" {
		return RefuelResult{}, &ValidationError{Msg: "card_code is required"}
	}
	if req.Quantity <= 0 {
		return RefuelResult{}, &ValidationError{Msg: "quantity must be greater than 0"}
	}
	if req.Code1C == "" && req.StationName == "" {
		return RefuelResult{}, &ValidationError{Msg: "station reference is required (code_1c or station_name)"}
	}

	var res RefuelResult
	err := s.refuels.InTx(ctx, func(tx repo.RefuelTx) error {
		card, err := tx.LockCardByCode(ctx, req.CardCode)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCardNotFound
		}
		if err != nil {
			return err
		}

		if req.IdempotencyKey != "" {
			op, found, err := tx.OperationByIdempotencyKey(ctx, req.IdempotencyKey)
			if err != nil {
				return err
			}
			if found {
				// A key replays only against the card it was recorded for.
				if op.FuelCardID != card.ID {
					return &ValidationError{Msg: "idempotency_key was already used for another card"}
				}
				res = replayResult(req.CardCode, op)
				return nil
			}
		}

		if card.BalanceLiters < req.Quantity {
			return &InsufficientBalanceError{
				CurrentBalance:    card.BalanceLiters,
				RequestedQuantity: req.Quantity,
			}
		}

		now := s.now().In(s.loc)
		if card.DailyLimitLiters > 0 {
			dayStart, dayEnd := dayBounds(now)
			consumed, err := tx.ConsumedBetween(ctx, card.ID, dayStart, dayEnd)
			if err != nil {
				return err
			}
			if consumed+req.Quantity > card.DailyLimitLiters {
				return &DailyLimitError{
					DailyLimit:        card.DailyLimitLiters,
					ConsumedToday:     consumed,
					RequestedQuantity: req.Quantity,
				}
			}
		}

		var station models.Station
		if req.Code1C != "" {
			station, err = tx.StationByCode(ctx, req.Code1C)
		} else {
			station, err = tx.StationByName(ctx, req.StationName)
		}
		if errors.Is(err, repo.ErrNotFound) {
			return ErrStationNotFound
		}
		if err != nil {
			return err
		}

		newBalance := card.BalanceLiters - req.Quantity
		amount := req.Quantity * req.Price

		if err := tx.SetCardBalance(ctx, card.ID, newBalance); err != nil {
			return err
		}

		op := models.Operation{
			FuelCardID:    card.ID,
			StationID:     &station.ID,
			OperationDate: now,
			OperationType: models.OpTypeRefuel,
			Quantity:      req.Quantity,
			Price:         req.Price,
			Amount:        amount,
			Comment:       req.Comment,
			BalanceAfter:  &newBalance,
		}
		if req.IdempotencyKey != "" {
			op.IdempotencyKey = &req.IdempotencyKey
		}
		if _, err := tx.InsertOperation(ctx, op); err != nil {
			return err
		}

		res = RefuelResult{
			CardCode:        card.CardCode,
			Quantity:        req.Quantity,
			Price:           req.Price,
			Amount:          amount,
			PreviousBalance: card.BalanceLiters,
			NewBalance:      newBalance,
			StationName:     station.Name,
			OperationDate:   now,
		}
		return nil
	})
	if err != nil {
		metrics.RefuelsFailed.WithLabelValues(failReason(err)).Inc()
		return RefuelResult{}, err
	}

	metrics.RefuelsTotal.Inc()
	if !res.Replayed {
		s.audit.Record("refuel", req.CardCode, "applied", map[string]any{
			"quantity":    res.Quantity,
			"new_balance": strconv.FormatFloat(res.NewBalance, 'f', 3, 64),
			"station":     res.StationName,
		})
	}
	return res, nil
}

// replayResult reconstructs the original success response from the
// recorded ledger entry; balance_after is stored exactly for this.
func replayResult(cardCode string, op models.Operation) RefuelResult {
	res := RefuelResult{
		CardCode:      cardCode,
		Quantity:      op.Quantity,
		Price:         op.Price,
		Amount:        op.Amount,
		StationName:   op.StationName,
		OperationDate: op.OperationDate,
		Replayed:      true,
	}
	if op.BalanceAfter != nil {
		res.NewBalance = *op.BalanceAfter
		res.PreviousBalance = *op.BalanceAfter + op.Quantity
	}
	return res
}

func failReason(err error) string {
	var insuff *InsufficientBalanceError
	var limit *DailyLimitError
	var invalid *ValidationError
	switch {
	case errors.As(err, &insuff):
		return "insufficient_balance"
	case errors.As(err, &limit):
		return "daily_limit"
	case errors.As(err, &invalid):
		return "invalid_request"
	case errors.Is(err, ErrCardNotFound):
		return "card_not_found"
	case errors.Is(err, ErrStationNotFound):
		return "station_not_found"
	default:
		return "store"
	}
}
