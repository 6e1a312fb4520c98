package services

import "time"

// dayBounds returns the half-open [midnight, midnight+24h) window of
// the calendar day containing now, in now's location. Daily limits are
// counted against this window in the business timezone.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// availableBalance is the quantity actually usable right now:
// max(0, min(balance, limit - consumed)). A limit of zero means the
// card is unlimited and the raw balance passes through.
func availableBalance(balance, limit, consumed float64) float64 {
	if limit <= 0 {
		return balance
	}
	rem := limit - consumed
	if rem > balance {
		rem = balance
	}
	if rem < 0 {
		rem = 0
	}
	return rem
}
