package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/models"
)

// ErrNotFound is returned by every repository when the requested row
// does not exist. Services translate it into their own taxonomy.
var ErrNotFound = errors.New("not found")

type Clients interface {
	List(ctx context.Context) ([]models.Client, error)
	GetByLogin(ctx context.Context, login string) (models.Client, error)
	Create(ctx context.Context, c models.Client) (models.Client, error)
	Update(ctx context.Context, c models.Client) (models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type FuelTypes interface {
	List(ctx context.Context) ([]models.FuelType, error)
	Create(ctx context.Context, ft models.FuelType) (models.FuelType, error)
	Update(ctx context.Context, ft models.FuelType) (models.FuelType, error)
	Delete(ctx context.Context, id int64) error
}

type Stations interface {
	List(ctx context.Context) ([]models.Station, error)
	GetByCode(ctx context.Context, code string) (models.Station, error)
	GetByName(ctx context.Context, name string) (models.Station, error)
	Create(ctx context.Context, s models.Station) (models.Station, error)
	Update(ctx context.Context, s models.Station) (models.Station, error)
	Delete(ctx context.Context, id int64) error
}

// CardUpdate carries only the fields an administrative PUT supplied;
// nil pointers leave the column untouched.
type CardUpdate struct {
	CardCode         *string
	ClientID         *int64
	FuelTypeID       *int64
	BalanceLiters    *float64
	DailyLimitLiters *float64
	PinCode          *string
}

type Cards interface {
	List(ctx context.Context) ([]models.Card, error)
	GetByCode(ctx context.Context, code string) (models.Card, error)
	Create(ctx context.Context, c models.Card) (models.Card, error)
	Update(ctx context.Context, id int64, upd CardUpdate) (models.Card, error)
	Delete(ctx context.Context, id int64) error

	// StatusByCode reads the card, its client/fuel-type names and the
	// refuel consumption inside [dayStart, dayEnd) as one consistent
	// snapshot (a single statement).
	StatusByCode(ctx context.Context, code string, dayStart, dayEnd time.Time) (models.CardStatus, error)
}

type Operations interface {
	List(ctx context.Context) ([]models.Operation, error)
	Create(ctx context.Context, op models.Operation) (models.Operation, error)
	Update(ctx context.Context, op models.Operation) (models.Operation, error)
	Delete(ctx context.Context, id int64) error
}

// RefuelTx is the slice of the store visible inside one refuel
// transaction. The postgres implementation backs it with a single
// pgx.Tx; LockCardByCode takes the row lock that serializes concurrent
// refuels on the same card.
type RefuelTx interface {
	LockCardByCode(ctx context.Context, code string) (models.Card, error)
	OperationByIdempotencyKey(ctx context.Context, key string) (models.Operation, bool, error)
	ConsumedBetween(ctx context.Context, cardID int64, from, to time.Time) (float64, error)
	StationByCode(ctx context.Context, code string) (models.Station, error)
	StationByName(ctx context.Context, name string) (models.Station, error)
	SetCardBalance(ctx context.Context, cardID int64, balance float64) error
	InsertOperation(ctx context.Context, op models.Operation) (models.Operation, error)
}

// Refuels runs fn inside a single database transaction: commit on nil,
// full rollback on any error. No partial state survives a failure.
type Refuels interface {
	InTx(ctx context.Context, fn func(RefuelTx) error) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
