package models

import "time"

// OpTypeRefuel is the only operation type with transactional meaning;
// other values are free-form journal records created by administrators.
const OpTypeRefuel = "refuel"

// Operation is one ledger entry. Entries created by the refuel service
// are append-only; amount is recorded at creation time and never
// recomputed.
type Operation struct {
	ID             int64     `json:"id"`
	FuelCardID     int64     `json:"fuel_card_id"`
	StationID      *int64    `json:"station_id"`
	CardCode       string    `json:"card_code"`
	StationName    string    `json:"station_name"`
	OperationDate  time.Time `json:"-"`
	OperationType  string    `json:"operation_type"`
	Quantity       float64   `json:"quantity"`
	Price          float64   `json:"price"`
	Amount         float64   `json:"amount"`
	Comment        string    `json:"comment"`
	BalanceAfter   *float64  `json:"-"`
	IdempotencyKey *string   `json:"-"`
}
