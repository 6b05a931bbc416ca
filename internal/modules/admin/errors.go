package admin

import "errors"

var (
	ErrUpdateInFlight    = errors.New("a status update for this order is already in progress")
	ErrInvalidTransition = errors.New("order status can only move Pending to Ready or Ready to Completed")
	ErrUnknownOrder      = errors.New("order not found in the console")
)
