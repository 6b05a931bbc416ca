package admin

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

const fetchFailedMessage = "Failed to fetch orders. Ensure the backend is running."

// Snapshot is what the dashboard renders: the last known order list plus
// which orders currently have a status update in flight.
type Snapshot struct {
	Orders   []domain.OrderRecord
	Updating map[string]bool
	Loaded   bool
	Err      string
}

// Console holds the admin view of all orders. Refresh replaces the list
// wholesale, so overlapping refreshes are harmless; Advance is single-flight
// per order id.
type Console struct {
	gw Gateway

	mu       sync.Mutex
	orders   []domain.OrderRecord
	updating map[string]bool
	loaded   bool
	err      string
}

func NewConsole(gw Gateway) *Console {
	return &Console{
		gw:       gw,
		updating: make(map[string]bool),
	}
}

// Refresh fetches every order and replaces local state with the reply. On
// failure the previous list stays on screen and an error message is kept
// alongside it.
func (c *Console) Refresh(ctx context.Context) error {
	orders, err := c.gw.ListOrders(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = gateway.UserMessage(err, fetchFailedMessage)
		c.loaded = true
		return err
	}
	c.orders = orders
	c.err = ""
	c.loaded = true
	return nil
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
// The controller cancels ctx when the dashboard unmounts, so no tick can
// outlive the screen it feeds.
func (c *Console) Run(ctx context.Context, interval time.Duration) {
	_ = c.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				log.Printf("admin_poll_error error=%q", err)
			}
		}
	}
}

// Advance moves one order forward: Pending to Ready or Ready to Completed,
// nothing else. At most one update per order id may be in flight; a second
// attempt on the same id is rejected until the first finishes. The displayed
// status never changes optimistically, only a successful refresh moves it.
func (c *Console) Advance(ctx context.Context, orderID string, target domain.OrderStatus) error {
	c.mu.Lock()
	if c.updating[orderID] {
		c.mu.Unlock()
		return ErrUpdateInFlight
	}

	current, ok := c.statusOf(orderID)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownOrder
	}
	if !allowedTransition(current, target) {
		c.mu.Unlock()
		return ErrInvalidTransition
	}

	c.updating[orderID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.updating, orderID)
		c.mu.Unlock()
	}()

	if err := c.gw.UpdateOrderStatus(ctx, orderID, target); err != nil {
		c.mu.Lock()
		c.err = gateway.UserMessage(err, "Failed to update order status. Please try again.")
		c.mu.Unlock()
		return err
	}

	log.Printf("order_status_advanced order_id=%s status=%s", orderID, target)
	return c.Refresh(ctx)
}

// Updating reports whether a status update for the order is in flight.
func (c *Console) Updating(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updating[orderID]
}

// Snapshot copies the console state for rendering.
func (c *Console) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	orders := make([]domain.OrderRecord, len(c.orders))
	copy(orders, c.orders)
	updating := make(map[string]bool, len(c.updating))
	for id := range c.updating {
		updating[id] = true
	}
	return Snapshot{Orders: orders, Updating: updating, Loaded: c.loaded, Err: c.err}
}

// statusOf must be called with c.mu held.
func (c *Console) statusOf(orderID string) (domain.OrderStatus, bool) {
	for _, o := range c.orders {
		if o.ID == orderID {
			return o.Status, true
		}
	}
	return "", false
}

func allowedTransition(from, to domain.OrderStatus) bool {
	switch {
	case from == domain.OrderPending && to == domain.OrderReady:
		return true
	case from == domain.OrderReady && to == domain.OrderCompleted:
		return true
	}
	return false
}
