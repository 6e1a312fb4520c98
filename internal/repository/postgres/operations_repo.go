package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
)

type operationsRepo struct{ pool *pgxpool.Pool }

func (r *operationsRepo) List(ctx context.Context) ([]models.Operation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT co.id, co.fuel_card_id, co.station_id,
       COALESCE(fc.card_code, ''), COALESCE(s.name, ''),
       co.operation_date, co.operation_type, co.quantity, co.price, co.amount, co.comment
  FROM card_operations co
  LEFT JOIN fuel_cards fc ON co.fuel_card_id = fc.id
  LEFT JOIN stations s ON co.station_id = s.id
 ORDER BY co.operation_date DESC, co.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Operation
	for rows.Next() {
		var op models.Operation
		if err := rows.Scan(&op.ID, &op.FuelCardID, &op.StationID, &op.CardCode, &op.StationName,
			&op.OperationDate, &op.OperationType, &op.Quantity, &op.Price, &op.Amount, &op.Comment); err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

func (r *operationsRepo) Create(ctx context.Context, op models.Operation) (models.Operation, error) {
	err := r.pool.QueryRow(ctx, `
INSERT INTO card_operations (fuel_card_id, station_id, operation_date, operation_type, quantity, price, amount, comment)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, operation_date`,
		op.FuelCardID, op.StationID, op.OperationDate, op.OperationType,
		op.Quantity, op.Price, op.Amount, op.Comment,
	).Scan(&op.ID, &op.OperationDate)
	return op, err
}

func (r *operationsRepo) Update(ctx context.Context, op models.Operation) (models.Operation, error) {
	err := r.pool.QueryRow(ctx, `
UPDATE card_operations
   SET fuel_card_id=$2, station_id=$3, operation_date=$4,
       operation_type=$5, quantity=$6, price=$7, amount=$8, comment=$9
 WHERE id=$1
 RETURNING id, operation_date, operation_type, quantity, price, amount, comment`,
		op.ID, op.FuelCardID, op.StationID, op.OperationDate,
		op.OperationType, op.Quantity, op.Price, op.Amount, op.Comment,
	).Scan(&op.ID, &op.OperationDate, &op.OperationType, &op.Quantity, &op.Price, &op.Amount, &op.Comment)
	return op, mapErr(err)
}

func (r *operationsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM card_operations WHERE id=$1`, id)
	return err
}
