package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
)

type Repositories struct {
	Clients    repo.Clients
	FuelTypes  repo.FuelTypes
	Stations   repo.Stations
	Cards      repo.Cards
	Operations repo.Operations
	Refuels    repo.Refuels
	AuditLogs  repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Clients:    &clientsRepo{pool},
		FuelTypes:  &fuelTypesRepo{pool},
		Stations:   &stationsRepo{pool},
		Cards:      &cardsRepo{pool},
		Operations: &operationsRepo{pool},
		Refuels:    &refuelsRepo{pool},
		AuditLogs:  &auditLogsRepo{pool},
	}
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}
