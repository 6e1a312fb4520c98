package services

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotFound       = errors.New("card not found")
	ErrStationNotFound    = errors.New("station not found")
	ErrOperationNotFound  = errors.New("operation not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// ValidationError marks malformed or missing input. Checked before any
// store interaction.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// InsufficientBalanceError aborts a refuel before any mutation and
// carries the diagnostic amounts echoed to the caller.
type InsufficientBalanceError struct {
	CurrentBalance    float64
	RequestedQuantity float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient fuel balance: current %.3f, requested %.3f",
		e.CurrentBalance, e.RequestedQuantity)
}

// DailyLimitError aborts a refuel that would exceed the card's daily
// quota for the current business day.
type DailyLimitError struct {
	DailyLimit        float64
	ConsumedToday     float64
	RequestedQuantity float64
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily limit exceeded: limit %.3f, consumed today %.3f, requested %.3f",
		e.DailyLimit, e.ConsumedToday, e.RequestedQuantity)
}

func (e *DailyLimitError) Remaining() float64 {
	rem := e.DailyLimit - e.ConsumedToday
	if rem < 0 {
		return 0
	}
	return rem
}
