package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/modules/admin"
	"github.com/anchanpratham/tiffinontime/internal/modules/cart"
	"github.com/anchanpratham/tiffinontime/internal/modules/catalog"
	"github.com/anchanpratham/tiffinontime/internal/modules/order"
)

// SelectedHotel is the vendor the ordering screen works against.
type SelectedHotel struct {
	ID   string
	Name string
}

// menuScreen is the per-mount state of the ordering screen. It is created
// fresh every time a hotel is selected and dropped whenever the view moves
// away, which is what discards the cart.
type menuScreen struct {
	hotel     SelectedHotel
	items     []domain.MenuItem
	warning   string
	cart      *cart.Cart
	submitErr string
}

// State is the render snapshot of the root machine.
type State struct {
	Session      domain.Session
	View         View
	SignUp       bool
	Selected     *SelectedHotel
	Confirmation *domain.ConfirmationDetails
}

// MenuState is the render snapshot of the ordering screen.
type MenuState struct {
	Hotel      SelectedHotel
	Items      []domain.MenuItem
	Warning    string
	Lines      []cart.Line
	Seats      int
	Total      float64
	Submitting bool
	SubmitErr  string
}

// Controller is the root state machine. It owns the session, the active
// view, and the mount/unmount side effects: the ordering screen's cart and
// the admin console's poll loop both live and die with their views.
type Controller struct {
	catalog      *catalog.Service
	orders       *order.Service
	adminGW      admin.Gateway
	pollInterval time.Duration

	mu            sync.Mutex
	session       domain.Session
	view          View
	signUp        bool
	selected      *SelectedHotel
	confirmation  *domain.ConfirmationDetails
	menu          *menuScreen
	console       *admin.Console
	consoleCancel context.CancelFunc
}

func NewController(catalogSvc *catalog.Service, orderSvc *order.Service, adminGW admin.Gateway, pollInterval time.Duration) *Controller {
	return &Controller{
		catalog:      catalogSvc,
		orders:       orderSvc,
		adminGW:      adminGW,
		pollInterval: pollInterval,
		session:      domain.NewSession(),
		view:         ViewLogin,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Session: c.session,
		View:    c.view,
		SignUp:  c.signUp,
	}
	if c.selected != nil {
		sel := *c.selected
		s.Selected = &sel
	}
	if c.confirmation != nil {
		conf := *c.confirmation
		s.Confirmation = &conf
	}
	return s
}

// LoginSucceeded records an authenticated session and routes by role.
func (c *Controller) LoginSucceeded(role domain.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = domain.Session{Authenticated: true, Role: role}
	c.signUp = false
	if role == domain.RoleAdmin {
		c.setViewLocked(ViewAdminDashboard)
	} else {
		c.setViewLocked(ViewHome)
	}
}

// AdminLoginSucceeded is LoginSucceeded with the role forced to admin.
func (c *Controller) AdminLoginSucceeded() {
	c.LoginSucceeded(domain.RoleAdmin)
}

// Logout resets the session and every piece of screen state, from any view.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutLocked()
}

func (c *Controller) SwitchToSignUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signUp = true
}

// SwitchToLogin returns to the plain login form. It also serves as the
// back action from the admin-login view.
func (c *Controller) SwitchToLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signUp = false
	c.setViewLocked(ViewLogin)
}

// ForceAdminLogin is the one-shot external signal: it moves to the
// admin-login view regardless of the current state. Being an event rather
// than a flag, it cannot re-trigger on its own.
func (c *Controller) ForceAdminLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewLocked(ViewAdminLogin)
}

// SelectHotel records the vendor, loads its menu, and mounts a fresh
// ordering screen with an empty cart.
func (c *Controller) SelectHotel(ctx context.Context, hotelID, hotelName string) {
	items, warning := c.catalog.ListMenu(ctx, hotelID)

	c.mu.Lock()
	defer c.mu.Unlock()

	sel := SelectedHotel{ID: hotelID, Name: hotelName}
	c.selected = &sel
	c.menu = &menuScreen{
		hotel:   sel,
		items:   items,
		warning: warning,
		cart:    cart.New(),
	}
	c.setViewLocked(ViewMenu)
}

// MenuState snapshots the ordering screen; ok is false when it isn't mounted.
func (c *Controller) MenuState() (MenuState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menu == nil {
		return MenuState{}, false
	}
	return MenuState{
		Hotel:      c.menu.hotel,
		Items:      c.menu.items,
		Warning:    c.menu.warning,
		Lines:      c.menu.cart.Lines(),
		Seats:      c.menu.cart.Seats(),
		Total:      c.menu.cart.Total(),
		Submitting: c.orders.Submitting(),
		SubmitErr:  c.menu.submitErr,
	}, true
}

// ApplyCart adjusts the cart line for a menu item on the mounted screen.
func (c *Controller) ApplyCart(itemID string, action cart.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menu == nil {
		return
	}
	for _, item := range c.menu.items {
		if item.ID == itemID {
			c.menu.cart.Apply(item, action)
			return
		}
	}
}

// SetSeats stores the seat count on the mounted screen, clamped by the cart.
func (c *Controller) SetSeats(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.menu != nil {
		c.menu.cart.SetSeats(n)
	}
}

// SubmitOrder runs the submission workflow for the mounted ordering screen.
// On success the machine moves to the confirmation view; on failure the
// screen keeps its cart and shows the error, ready for another attempt.
// The payload is snapshotted under the lock before the network call, so
// cart edits racing an in-flight submission never touch what gets sent.
func (c *Controller) SubmitOrder(ctx context.Context) error {
	c.mu.Lock()
	if c.menu == nil {
		c.mu.Unlock()
		return order.ErrEmptyCart
	}
	screen := c.menu
	screen.submitErr = ""
	hotelID := screen.hotel.ID
	lines := screen.cart.Lines()
	seats := screen.cart.Seats()
	total := screen.cart.Total()
	c.mu.Unlock()

	details, err := c.orders.Submit(ctx, hotelID, lines, seats, total)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		screen.submitErr = err.Error()
		return err
	}
	if c.menu != screen {
		// Screen went away while the request was in flight; nothing to show.
		return nil
	}
	c.confirmation = details
	c.setViewLocked(ViewConfirmation)
	return nil
}

// SetSubmitError surfaces a submission error message on the ordering screen.
func (c *Controller) SetSubmitError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.menu != nil {
		c.menu.submitErr = msg
	}
}

// BackToHome clears the vendor selection and confirmation payload and lands
// on home, or on the dashboard for an admin session.
func (c *Controller) BackToHome() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = nil
	c.confirmation = nil
	if c.session.Role == domain.RoleAdmin {
		c.setViewLocked(ViewAdminDashboard)
	} else {
		c.setViewLocked(ViewHome)
	}
}

// Navigate moves to an informational view without touching the session.
func (c *Controller) Navigate(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewLocked(v)
}

// Console returns the mounted admin console, or nil outside the dashboard.
func (c *Controller) Console() *admin.Console {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.console
}

// AdvanceOrder forwards a status change to the mounted console.
func (c *Controller) AdvanceOrder(ctx context.Context, orderID string, status domain.OrderStatus) error {
	c.mu.Lock()
	console := c.console
	c.mu.Unlock()

	if console == nil {
		return admin.ErrUnknownOrder
	}
	return console.Advance(ctx, orderID, status)
}

// setViewLocked performs the view change plus the mount/unmount side
// effects. Must be called with c.mu held.
func (c *Controller) setViewLocked(v View) {
	if c.view == ViewMenu && v != ViewMenu {
		c.menu = nil
	}
	if c.view == ViewAdminDashboard && v != ViewAdminDashboard {
		c.unmountConsoleLocked()
	}

	if v == ViewAdminDashboard {
		// The dashboard never renders for a non-admin session.
		if c.session.Role != domain.RoleAdmin {
			c.logoutLocked()
			return
		}
		if c.console == nil {
			c.mountConsoleLocked()
		}
	}

	c.view = v
}

func (c *Controller) logoutLocked() {
	c.unmountConsoleLocked()
	c.menu = nil
	c.selected = nil
	c.confirmation = nil
	c.signUp = false
	c.session = domain.NewSession()
	c.view = ViewLogin
}

func (c *Controller) mountConsoleLocked() {
	c.console = admin.NewConsole(c.adminGW)
	ctx, cancel := context.WithCancel(context.Background())
	c.consoleCancel = cancel
	go c.console.Run(ctx, c.pollInterval)
	log.Printf("admin_console_mounted poll_interval=%s", c.pollInterval)
}

func (c *Controller) unmountConsoleLocked() {
	if c.consoleCancel != nil {
		c.consoleCancel()
		c.consoleCancel = nil
	}
	if c.console != nil {
		c.console = nil
		log.Printf("admin_console_unmounted")
	}
}
