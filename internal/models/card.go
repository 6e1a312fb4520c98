package models

// Card is a fuel account: a balance in liters plus an optional daily
// consumption limit. Balance is mutated only by the refuel service and
// by administrative updates, both under the same row lock.
type Card struct {
	ID               int64   `json:"id"`
	CardCode         string  `json:"card_code"`
	ClientID         *int64  `json:"client_id"`
	FuelTypeID       *int64  `json:"fuel_type_id"`
	BalanceLiters    float64 `json:"balance_liters"`
	DailyLimitLiters float64 `json:"daily_limit_liters"`
	PinCode          *string `json:"pin_code"`
	ClientName       string  `json:"client_name"`
	FuelType         string  `json:"fuel_type"`
}
