package catalog

import "github.com/anchanpratham/tiffinontime/internal/domain"

// Fixed datasets shown when the backend is unreachable or empty, so the
// screens stay usable without it.

func fallbackHotels() []domain.Hotel {
	return []domain.Hotel{
		{ID: "h1", Name: "College Canteen", Location: "Main Building"},
		{ID: "h2", Name: "Harshitha", Location: "Behind the Library"},
		{ID: "h3", Name: "Shri Ram Fast Food", Location: "Near Gate 2"},
		{ID: "h4", Name: "The Mess Hall", Location: "Hostel Block"},
	}
}

func fallbackMenu(hotelID string) []domain.MenuItem {
	return []domain.MenuItem{
		{ID: hotelID + "-m1", Name: "Idli Vada Combo", Price: 40, Category: "Breakfast"},
		{ID: hotelID + "-m2", Name: "Masala Dosa", Price: 55, Category: "Snacks"},
		{ID: hotelID + "-m3", Name: "Veg Thali", Price: 120, Category: "Indian"},
		{ID: hotelID + "-m4", Name: "Cold Coffee", Price: 45, Category: "Drinks"},
		{ID: hotelID + "-m5", Name: "Gulab Jamun (2 pcs)", Price: 30, Category: "Dessert"},
	}
}
