package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type cardsRepo struct{ pool *pgxpool.Pool }

const cardSelect = `
SELECT fc.id, fc.card_code, fc.client_id, fc.fuel_type_id,
       fc.balance_liters, fc.daily_limit_liters, fc.pin_code,
       COALESCE(c.name, ''), COALESCE(ft.name, '')
  FROM fuel_cards fc
  LEFT JOIN clients c ON fc.client_id = c.id
  LEFT JOIN fuel_types ft ON fc.fuel_type_id = ft.id`

func scanCard(row interface{ Scan(...any) error }) (models.Card, error) {
	var c models.Card
	err := row.Scan(&c.ID, &c.CardCode, &c.ClientID, &c.FuelTypeID,
		&c.BalanceLiters, &c.DailyLimitLiters, &c.PinCode, &c.ClientName, &c.FuelType)
	return c, err
}

func (r *cardsRepo) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.pool.Query(ctx, cardSelect+` ORDER BY fc.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *cardsRepo) GetByCode(ctx context.Context, code string) (models.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, cardSelect+` WHERE fc.card_code=$1`, code))
	return c, mapErr(err)
}

func (r *cardsRepo) getByID(ctx context.Context, id int64) (models.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, cardSelect+` WHERE fc.id=$1`, id))
	return c, mapErr(err)
}

func (r *cardsRepo) Create(ctx context.Context, c models.Card) (models.Card, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO fuel_cards(card_code, client_id, fuel_type_id, balance_liters, daily_limit_liters, pin_code)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		c.CardCode, c.ClientID, c.FuelTypeID, c.BalanceLiters, c.DailyLimitLiters, c.PinCode,
	).Scan(&id)
	if err != nil {
		return models.Card{}, err
	}
	return r.getByID(ctx, id)
}

// Update touches only the supplied columns. The statement takes the row
// lock, so an administrative balance change waits out any refuel in
// flight on the same card.
func (r *cardsRepo) Update(ctx context.Context, id int64, upd repo.CardUpdate) (models.Card, error) {
	var (
		set  []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if upd.CardCode != nil {
		add("card_code", *upd.CardCode)
	}
	if upd.ClientID != nil {
		add("client_id", *upd.ClientID)
	}
	if upd.FuelTypeID != nil {
		add("fuel_type_id", *upd.FuelTypeID)
	}
	if upd.BalanceLiters != nil {
		add("balance_liters", *upd.BalanceLiters)
	}
	if upd.DailyLimitLiters != nil {
		add("daily_limit_liters", *upd.DailyLimitLiters)
	}
	if upd.PinCode != nil {
		add("pin_code", *upd.PinCode)
	}
	if len(set) == 0 {
		return r.getByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE fuel_cards SET %s WHERE id=$%d RETURNING id`,
		strings.Join(set, ", "), len(args))

	var updated int64
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&updated); err != nil {
		return models.Card{}, mapErr(err)
	}
	return r.getByID(ctx, updated)
}

func (r *cardsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM fuel_cards WHERE id=$1`, id)
	return err
}

// StatusByCode is a single statement, so the balance and the daily
// consumption come from one snapshot.
func (r *cardsRepo) StatusByCode(ctx context.Context, code string, dayStart, dayEnd time.Time) (models.CardStatus, error) {
	var st models.CardStatus
	err := r.pool.QueryRow(ctx, `
SELECT fc.card_code,
       COALESCE(ft.name, ''),
       fc.balance_liters,
       fc.daily_limit_liters,
       COALESCE((SELECT SUM(co.quantity)
                   FROM card_operations co
                  WHERE co.fuel_card_id = fc.id
                    AND co.operation_type = $2
                    AND co.operation_date >= $3
                    AND co.operation_date < $4), 0),
       COALESCE(c.name, ''),
       COALESCE(c.inn, '')
  FROM fuel_cards fc
  LEFT JOIN clients c ON fc.client_id = c.id
  LEFT JOIN fuel_types ft ON fc.fuel_type_id = ft.id
 WHERE fc.card_code = $1`,
		code, models.OpTypeRefuel, dayStart, dayEnd,
	).Scan(&st.CardCode, &st.FuelType, &st.BalanceLiters, &st.DailyLimitLiters,
		&st.ConsumedToday, &st.ClientName, &st.ClientINN)
	return st, mapErr(err)
}
