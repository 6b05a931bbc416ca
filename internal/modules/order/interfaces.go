package order

import (
	"context"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

// Gateway is the single write this module performs.
type Gateway interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*domain.ConfirmationDetails, error)
}
