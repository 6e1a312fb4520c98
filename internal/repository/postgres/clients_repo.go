package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
)

type clientsRepo struct{ pool *pgxpool.Pool }

func (r *clientsRepo) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, inn, name, address, phone, email, login, admin
		   FROM clients
		  ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.INN, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Login, &c.Admin); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) GetByLogin(ctx context.Context, login string) (models.Client, error) {
	var c models.Client
	err := r.pool.QueryRow(ctx,
		`SELECT id, inn, name, address, phone, email, login, password_hash, admin
		   FROM clients
		  WHERE login=$1`, login,
	).Scan(&c.ID, &c.INN, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Login, &c.PasswordHash, &c.Admin)
	return c, mapErr(err)
}

func (r *clientsRepo) Create(ctx context.Context, c models.Client) (models.Client, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clients(inn, name, address, phone, email, login, password_hash, admin)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id`,
		c.INN, c.Name, c.Address, c.Phone, c.Email, c.Login, c.PasswordHash, c.Admin,
	).Scan(&c.ID)
	return c, err
}

func (r *clientsRepo) Update(ctx context.Context, c models.Client) (models.Client, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE clients
		    SET inn=$2, name=$3, address=$4, phone=$5, email=$6, login=$7, admin=$8
		  WHERE id=$1
		  RETURNING id, inn, name, address, phone, email, login, admin`,
		c.ID, c.INN, c.Name, c.Address, c.Phone, c.Email, c.Login, c.Admin,
	).Scan(&c.ID, &c.INN, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Login, &c.Admin)
	return c, mapErr(err)
}

func (r *clientsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}
