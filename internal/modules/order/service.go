package order

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
	"github.com/anchanpratham/tiffinontime/internal/modules/cart"
)

// Service turns a cart snapshot into a create-order request. One submission
// may be in flight at a time; that guard exists to absorb double clicks, the
// backend sees no idempotency key.
type Service struct {
	gw         Gateway
	submitting atomic.Bool
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Submitting reports whether a submission is currently in flight. The menu
// screen disables its button while this is true.
func (s *Service) Submitting() bool {
	return s.submitting.Load()
}

// Submit validates the snapshot and sends the order. The lines, seat count,
// and total are copies taken by the caller before the network call starts;
// nothing here reads or writes the live cart, so edits made while the
// request is in flight cannot leak into the payload.
func (s *Service) Submit(ctx context.Context, hotelID string, lines []cart.Line, seats int, total float64) (*domain.ConfirmationDetails, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if seats < 1 {
		return nil, ErrNoSeats
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	items := make([]gateway.OrderItemPayload, 0, len(lines))
	for _, l := range lines {
		items = append(items, gateway.OrderItemPayload{
			MenuItemID: l.ItemID,
			Quantity:   l.Quantity,
			Name:       l.Name,
		})
	}

	req := gateway.CreateOrderRequest{
		HotelID:     hotelID,
		Items:       items,
		SeatsBooked: seats,
		TotalPrice:  total,
	}

	details, err := s.gw.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("order_placed order_id=%s hotel_id=%s total=%.2f seats=%d",
		details.OrderID, hotelID, details.TotalPrice, details.SeatsBooked)
	return details, nil
}
