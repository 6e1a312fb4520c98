package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
)

type fuelTypesRepo struct{ pool *pgxpool.Pool }

func (r *fuelTypesRepo) List(ctx context.Context) ([]models.FuelType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code_1c FROM fuel_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FuelType
	for rows.Next() {
		var ft models.FuelType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Code1C); err != nil {
			return nil, err
		}
		out = append(out, ft)
	}
	return out, rows.Err()
}

func (r *fuelTypesRepo) Create(ctx context.Context, ft models.FuelType) (models.FuelType, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO fuel_types(name, code_1c) VALUES($1,$2) RETURNING id`,
		ft.Name, ft.Code1C,
	).Scan(&ft.ID)
	return ft, err
}

func (r *fuelTypesRepo) Update(ctx context.Context, ft models.FuelType) (models.FuelType, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE fuel_types SET name=$2, code_1c=$3 WHERE id=$1
		 RETURNING id, name, code_1c`,
		ft.ID, ft.Name, ft.Code1C,
	).Scan(&ft.ID, &ft.Name, &ft.Code1C)
	return ft, mapErr(err)
}

func (r *fuelTypesRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM fuel_types WHERE id=$1`, id)
	return err
}
