package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderReady     OrderStatus = "Ready"
	OrderCompleted OrderStatus = "Completed"
)

// OrderItem is one line of a placed order as the backend reports it.
type OrderItem struct {
	MenuItemID string `json:"menuItemId,omitempty"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// OrderRecord is an order as seen from the admin console. The client never
// creates or deletes these locally; it only asks the backend to advance
// their status.
type OrderRecord struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	SeatsBooked int         `json:"seatsBooked"`
	TotalPrice  float64     `json:"totalPrice"`
	Status      OrderStatus `json:"status"`
	OrderDate   time.Time   `json:"orderDate"`
}

// ShortID returns the last six characters of the order id for display.
func (o OrderRecord) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

// ConfirmationDetails is what a successful submission hands to the
// confirmation screen. Consumed once, discarded on navigating home.
type ConfirmationDetails struct {
	OrderID     string  `json:"orderId"`
	TotalPrice  float64 `json:"totalPrice"`
	SeatsBooked int     `json:"seatsBooked"`
}
