package catalog

import (
	"context"
	"log"

	"github.com/anchanpratham/tiffinontime/internal/domain"
)

const (
	warnHotelsFailed = "Using fallback data. Failed to fetch hotels from the backend."
	warnHotelsEmpty  = "Using fallback data. API returned no hotels."
	warnMenuFailed   = "Using fallback data. Failed to connect to the menu API."
	warnMenuEmpty    = "Using fallback data. API returned no items."
)

type Service struct {
	gw Gateway
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// ListHotels returns the vendor list plus a non-blocking warning. It never
// fails: a fetch error or an empty reply substitutes the fixed fallback set.
// No caching, no automatic retry.
func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, string) {
	hotels, err := s.gw.ListHotels(ctx)
	if err != nil {
		log.Printf("catalog_fallback op=list_hotels error=%q", err)
		return fallbackHotels(), warnHotelsFailed
	}
	if len(hotels) == 0 {
		return fallbackHotels(), warnHotelsEmpty
	}
	return hotels, ""
}

// ListMenu returns one hotel's menu under the same contract as ListHotels,
// with the fallback menu scoped to the hotel id.
func (s *Service) ListMenu(ctx context.Context, hotelID string) ([]domain.MenuItem, string) {
	items, err := s.gw.ListMenu(ctx, hotelID)
	if err != nil {
		log.Printf("catalog_fallback op=list_menu hotel_id=%s error=%q", hotelID, err)
		return fallbackMenu(hotelID), warnMenuFailed
	}
	if len(items) == 0 {
		return fallbackMenu(hotelID), warnMenuEmpty
	}
	return items, ""
}
