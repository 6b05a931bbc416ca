package ui

import (
	"github.com/anchanpratham/tiffinontime/internal/app"
	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/modules/admin"
	"github.com/anchanpratham/tiffinontime/internal/modules/cart"
)

// pageData is the single template payload. Screens only read the fields
// that concern them.
type pageData struct {
	SiteName string
	State    app.State
	Pink     bool
	Error    string
	Success  string

	Hotels        []domain.Hotel
	HotelsWarning string
	Menu          *menuView
	Admin         *admin.Snapshot
}

type menuItemView struct {
	domain.MenuItem
	Quantity int
}

type menuCategory struct {
	Name  string
	Items []menuItemView
}

type menuView struct {
	Hotel      app.SelectedHotel
	Categories []menuCategory
	Warning    string
	Lines      []cart.Line
	Seats      int
	Total      float64
	Submitting bool
	SubmitErr  string
	CartEmpty  bool
}

// buildMenuView groups items by category in first-seen order and annotates
// each with its current cart quantity.
func buildMenuView(st app.MenuState) *menuView {
	quantities := make(map[string]int, len(st.Lines))
	for _, l := range st.Lines {
		quantities[l.ItemID] = l.Quantity
	}

	var categories []menuCategory
	index := make(map[string]int)
	for _, item := range st.Items {
		name := item.Category
		if name == "" {
			name = "Other"
		}
		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, menuCategory{Name: name})
		}
		categories[i].Items = append(categories[i].Items, menuItemView{
			MenuItem: item,
			Quantity: quantities[item.ID],
		})
	}

	return &menuView{
		Hotel:      st.Hotel,
		Categories: categories,
		Warning:    st.Warning,
		Lines:      st.Lines,
		Seats:      st.Seats,
		Total:      st.Total,
		Submitting: st.Submitting,
		SubmitErr:  st.SubmitErr,
		CartEmpty:  len(st.Lines) == 0,
	}
}
