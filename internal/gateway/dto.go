package gateway

import "github.com/anchanpratham/tiffinontime/internal/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User User `json:"user"`
}

// User is the slice of the login reply this client cares about. The role is
// an opaque string the backend vouches for; nothing here verifies it.
type User struct {
	Role  domain.Role `json:"role"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OrderItemPayload struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Name       string `json:"name"`
}

// CreateOrderRequest is sent verbatim, including the client-computed total.
// The backend must not trust TotalPrice; this client cannot enforce that.
type CreateOrderRequest struct {
	HotelID     string             `json:"hotelId"`
	Items       []OrderItemPayload `json:"items"`
	SeatsBooked int                `json:"seatsBooked"`
	TotalPrice  float64            `json:"totalPrice"`
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}
