package order

import "errors"

var (
	ErrEmptyCart       = errors.New("your cart is empty, please add items before ordering")
	ErrNoSeats         = errors.New("at least one seat must be reserved")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)
