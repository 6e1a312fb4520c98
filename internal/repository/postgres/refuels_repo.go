package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type refuelsRepo struct{ pool *pgxpool.Pool }

// InTx runs fn against one database transaction: commit on nil, full
// rollback on any error.
func (r *refuelsRepo) InTx(ctx context.Context, fn func(repo.RefuelTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(&refuelTx{tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

type refuelTx struct{ tx pgx.Tx }

// LockCardByCode takes a FOR UPDATE lock on the card row. Concurrent
// refuels on the same card serialize here; the balance read below is
// therefore never stale when the debit lands.
func (t *refuelTx) LockCardByCode(ctx context.Context, code string) (models.Card, error) {
	var c models.Card
	err := t.tx.QueryRow(ctx, `
SELECT id, card_code, client_id, fuel_type_id, balance_liters, daily_limit_liters
  FROM fuel_cards
 WHERE card_code=$1
   FOR UPDATE`, code,
	).Scan(&c.ID, &c.CardCode, &c.ClientID, &c.FuelTypeID, &c.BalanceLiters, &c.DailyLimitLiters)
	return c, mapErr(err)
}

func (t *refuelTx) OperationByIdempotencyKey(ctx context.Context, key string) (models.Operation, bool, error) {
	var op models.Operation
	err := t.tx.QueryRow(ctx, `
SELECT co.id, co.fuel_card_id, co.station_id, COALESCE(s.name, ''),
       co.operation_date, co.operation_type, co.quantity, co.price, co.amount,
       co.comment, co.balance_after
  FROM card_operations co
  LEFT JOIN stations s ON co.station_id = s.id
 WHERE co.idempotency_key=$1`, key,
	).Scan(&op.ID, &op.FuelCardID, &op.StationID, &op.StationName,
		&op.OperationDate, &op.OperationType, &op.Quantity, &op.Price, &op.Amount,
		&op.Comment, &op.BalanceAfter)
	if err != nil {
		if mapErr(err) == repo.ErrNotFound {
			return models.Operation{}, false, nil
		}
		return models.Operation{}, false, err
	}
	return op, true, nil
}

func (t *refuelTx) ConsumedBetween(ctx context.Context, cardID int64, from, to time.Time) (float64, error) {
	var sum float64
	err := t.tx.QueryRow(ctx, `
SELECT COALESCE(SUM(quantity), 0)
  FROM card_operations
 WHERE fuel_card_id=$1
   AND operation_type=$2
   AND operation_date >= $3
   AND operation_date < $4`,
		cardID, models.OpTypeRefuel, from, to,
	).Scan(&sum)
	return sum, err
}

func (t *refuelTx) StationByCode(ctx context.Context, code string) (models.Station, error) {
	var s models.Station
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, code_1c, address FROM stations WHERE code_1c=$1 LIMIT 1`, code,
	).Scan(&s.ID, &s.Name, &s.Code1C, &s.Address)
	return s, mapErr(err)
}

func (t *refuelTx) StationByName(ctx context.Context, name string) (models.Station, error) {
	var s models.Station
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, code_1c, address FROM stations WHERE name=$1 LIMIT 1`, name,
	).Scan(&s.ID, &s.Name, &s.Code1C, &s.Address)
	return s, mapErr(err)
}

func (t *refuelTx) SetCardBalance(ctx context.Context, cardID int64, balance float64) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE fuel_cards SET balance_liters=$2 WHERE id=$1`, cardID, balance)
	return err
}

func (t *refuelTx) InsertOperation(ctx context.Context, op models.Operation) (models.Operation, error) {
	err := t.tx.QueryRow(ctx, `
INSERT INTO card_operations
    (fuel_card_id, station_id, operation_date, operation_type, quantity, price, amount, comment, balance_after, idempotency_key)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`,
		op.FuelCardID, op.StationID, op.OperationDate, op.OperationType,
		op.Quantity, op.Price, op.Amount, op.Comment, op.BalanceAfter, op.IdempotencyKey,
	).Scan(&op.ID)
	return op, err
}
