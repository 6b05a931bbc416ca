package admin

import (
	"context"

	"github.com/anchanpratham/tiffinontime/internal/domain"
)

// Gateway is the admin-gated slice of the remote gateway. Both calls carry
// the client-supplied Role header; the backend must do the real gating.
type Gateway interface {
	ListOrders(ctx context.Context) ([]domain.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}
