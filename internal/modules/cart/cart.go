package cart

import "github.com/anchanpratham/tiffinontime/internal/domain"

// Action adjusts a line's quantity.
type Action string

const (
	ActionAdd      Action = "ADD"        // +1
	ActionRemove   Action = "REMOVE"     // -1
	ActionSetToOne Action = "SET_TO_ONE" // exactly 1
)

// Line is one item in the in-progress order. Quantity is always >= 1 while
// the line exists; a line that would reach zero is removed instead.
type Line struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

func (l Line) Subtotal() float64 { return l.UnitPrice * float64(l.Quantity) }

// Cart is the unsubmitted order for one hotel. It is owned by the menu
// screen and thrown away when that screen goes, so it needs no locking of
// its own; the controller serializes access.
type Cart struct {
	lines []Line
	seats int
}

func New() *Cart {
	return &Cart{seats: 1}
}

// Apply adjusts the line for item according to action. Quantities clamp at
// zero and a zero-quantity line is dropped entirely.
func (c *Cart) Apply(item domain.MenuItem, action Action) {
	idx := c.indexOf(item.ID)

	var quantity int
	switch action {
	case ActionAdd:
		if idx >= 0 {
			quantity = c.lines[idx].Quantity + 1
		} else {
			quantity = 1
		}
	case ActionRemove:
		if idx >= 0 {
			quantity = c.lines[idx].Quantity - 1
		} else {
			quantity = 0
		}
	case ActionSetToOne:
		quantity = 1
	default:
		return
	}

	if quantity < 0 {
		quantity = 0
	}

	if idx >= 0 {
		if quantity == 0 {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
		c.lines[idx].Quantity = quantity
		return
	}
	if quantity > 0 {
		c.lines = append(c.lines, Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  quantity,
		})
	}
}

// QuantityOf returns the stored quantity for an item, zero when absent.
func (c *Cart) QuantityOf(itemID string) int {
	if idx := c.indexOf(itemID); idx >= 0 {
		return c.lines[idx].Quantity
	}
	return 0
}

// Total folds unit price times quantity over all lines. Recomputed on every
// call, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// SetSeats stores the seat reservation count, clamped to a minimum of one.
func (c *Cart) SetSeats(n int) {
	if n < 1 {
		n = 1
	}
	c.seats = n
}

func (c *Cart) Seats() int { return c.seats }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset empties the cart and puts seats back to one.
func (c *Cart) Reset() {
	c.lines = nil
	c.seats = 1
}

func (c *Cart) indexOf(itemID string) int {
	for i, l := range c.lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}
