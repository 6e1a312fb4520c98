package models

// CardStatus is the single-snapshot read backing the balance inquiry:
// card, owner and fuel type plus refuel consumption for the current
// business day.
type CardStatus struct {
	CardCode         string
	FuelType         string
	BalanceLiters    float64
	DailyLimitLiters float64
	ConsumedToday    float64
	ClientName       string
	ClientINN        string
}
