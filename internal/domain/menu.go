package domain

// MenuItem is one orderable dish, scoped to a single hotel.
type MenuItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
