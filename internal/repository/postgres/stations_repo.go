package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
)

type stationsRepo struct{ pool *pgxpool.Pool }

func (r *stationsRepo) List(ctx context.Context) ([]models.Station, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code_1c, address FROM stations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Code1C, &s.Address); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *stationsRepo) GetByCode(ctx context.Context, code string) (models.Station, error) {
	var s models.Station
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code_1c, address FROM stations WHERE code_1c=$1 LIMIT 1`, code,
	).Scan(&s.ID, &s.Name, &s.Code1C, &s.Address)
	return s, mapErr(err)
}

func (r *stationsRepo) GetByName(ctx context.Context, name string) (models.Station, error) {
	var s models.Station
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code_1c, address FROM stations WHERE name=$1 LIMIT 1`, name,
	).Scan(&s.ID, &s.Name, &s.Code1C, &s.Address)
	return s, mapErr(err)
}

func (r *stationsRepo) Create(ctx context.Context, s models.Station) (models.Station, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO stations(name, code_1c, address) VALUES($1,$2,$3) RETURNING id`,
		s.Name, s.Code1C, s.Address,
	).Scan(&s.ID)
	return s, err
}

func (r *stationsRepo) Update(ctx context.Context, s models.Station) (models.Station, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE stations SET name=$2, code_1c=$3, address=$4 WHERE id=$1
		 RETURNING id, name, code_1c, address`,
		s.ID, s.Name, s.Code1C, s.Address,
	).Scan(&s.ID, &s.Name, &s.Code1C, &s.Address)
	return s, mapErr(err)
}

func (r *stationsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM stations WHERE id=$1`, id)
	return err
}
