package catalog

import (
	"context"

	"github.com/anchanpratham/tiffinontime/internal/domain"
)

// Gateway is the slice of the remote gateway this module reads from.
type Gateway interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	ListMenu(ctx context.Context, hotelID string) ([]domain.MenuItem, error)
}
