package ui

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anchanpratham/tiffinontime/internal/app"
	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
	"github.com/anchanpratham/tiffinontime/internal/modules/admin"
	"github.com/anchanpratham/tiffinontime/internal/modules/auth"
	"github.com/anchanpratham/tiffinontime/internal/modules/cart"
	"github.com/anchanpratham/tiffinontime/internal/modules/catalog"
	"github.com/anchanpratham/tiffinontime/internal/modules/order"
)

const siteName = "TIFFIN ON TIME"

const genericOrderError = "Order failed. Please check the canteen backend status."

// Handler translates browser form posts into state-machine events and
// renders whichever screen the controller says is active.
type Handler struct {
	ctrl    *app.Controller
	auth    *auth.Service
	catalog *catalog.Service
}

func NewHandler(ctrl *app.Controller, authSvc *auth.Service, catalogSvc *catalog.Service) *Handler {
	return &Handler{ctrl: ctrl, auth: authSvc, catalog: catalogSvc}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Render)
	r.GET("/admin-login", h.ForceAdminLogin)
	r.GET("/nav/:page", h.Navigate)

	r.POST("/login", h.Login)
	r.POST("/signup", h.SignUp)
	r.POST("/switch-signup", h.SwitchToSignUp)
	r.POST("/switch-login", h.SwitchToLogin)
	r.POST("/admin-login", h.AdminLogin)
	r.POST("/logout", h.Logout)

	r.POST("/hotels/select", h.SelectHotel)
	r.POST("/cart", h.ApplyCart)
	r.POST("/seats", h.SetSeats)
	r.POST("/orders", h.SubmitOrder)
	r.POST("/home", h.BackToHome)

	r.POST("/admin/orders/:id/status", h.AdvanceOrder)
}

// Render draws the currently active view.
func (h *Handler) Render(c *gin.Context) {
	h.render(c, "")
}

func (h *Handler) render(c *gin.Context, inlineError string) {
	st := h.ctrl.State()

	data := pageData{
		SiteName: siteName,
		State:    st,
		Pink:     st.View.PinkBackground(),
		Error:    inlineError,
	}

	switch st.View {
	case app.ViewLogin:
		name := "page_login"
		if st.SignUp {
			name = "page_signup"
		}
		c.HTML(http.StatusOK, name, data)
	case app.ViewAdminLogin:
		c.HTML(http.StatusOK, "page_admin_login", data)
	case app.ViewHome:
		hotels, warning := h.catalog.ListHotels(c.Request.Context())
		data.Hotels = hotels
		data.HotelsWarning = warning
		c.HTML(http.StatusOK, "page_home", data)
	case app.ViewMenu:
		menu, ok := h.ctrl.MenuState()
		if !ok {
			h.ctrl.BackToHome()
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		data.Menu = buildMenuView(menu)
		c.HTML(http.StatusOK, "page_menu", data)
	case app.ViewConfirmation:
		c.HTML(http.StatusOK, "page_confirmation", data)
	case app.ViewAdminDashboard:
		if console := h.ctrl.Console(); console != nil {
			snap := console.Snapshot()
			data.Admin = &snap
		}
		c.HTML(http.StatusOK, "page_admin_dashboard", data)
	case app.ViewAbout:
		c.HTML(http.StatusOK, "page_about", data)
	case app.ViewContact:
		c.HTML(http.StatusOK, "page_contact", data)
	case app.ViewSupport:
		c.HTML(http.StatusOK, "page_support", data)
	default:
		c.HTML(http.StatusOK, "page_recovery", data)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, "Email and password are required.")
		return
	}

	role, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.render(c, gateway.UserMessage(err, "Login failed. Please try again."))
		return
	}
	h.ctrl.LoginSucceeded(role)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SignUp(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, "All fields are required.")
		return
	}

	if err := h.auth.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			h.render(c, "Passwords do not match.")
			return
		}
		h.render(c, gateway.UserMessage(err, "Registration failed. Please try again."))
		return
	}

	st := h.ctrl.State()
	c.HTML(http.StatusOK, "page_signup", pageData{
		SiteName: siteName,
		State:    st,
		Pink:     st.View.PinkBackground(),
		Success:  "Registration successful! You can now log in.",
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, "Email and password are required.")
		return
	}

	if err := h.auth.AdminLogin(c.Request.Context(), req); err != nil {
		if errors.Is(err, auth.ErrNotAdmin) {
			h.render(c, "Access denied. Admin privileges required.")
			return
		}
		h.render(c, gateway.UserMessage(err, "Admin login failed. Please try again."))
		return
	}
	h.ctrl.AdminLoginSucceeded()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SwitchToSignUp(c *gin.Context) {
	h.ctrl.SwitchToSignUp()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SwitchToLogin(c *gin.Context) {
	h.ctrl.SwitchToLogin()
	c.Redirect(http.StatusSeeOther, "/")
}

// ForceAdminLogin is the navigation side channel: hitting this URL jumps to
// the admin-login view from anywhere, once.
func (h *Handler) ForceAdminLogin(c *gin.Context) {
	h.ctrl.ForceAdminLogin()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	h.ctrl.Logout()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Navigate(c *gin.Context) {
	h.ctrl.Navigate(app.View(c.Param("page")))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SelectHotel(c *gin.Context) {
	hotelID := c.PostForm("hotelId")
	hotelName := c.PostForm("hotelName")
	if hotelID == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.ctrl.SelectHotel(c.Request.Context(), hotelID, hotelName)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ApplyCart(c *gin.Context) {
	h.ctrl.ApplyCart(c.PostForm("itemId"), cart.Action(c.PostForm("action")))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SetSeats(c *gin.Context) {
	seats, err := strconv.Atoi(c.PostForm("seats"))
	if err != nil {
		seats = 1
	}
	h.ctrl.SetSeats(seats)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	if err := h.ctrl.SubmitOrder(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			h.ctrl.SetSubmitError("Your cart is empty. Please add items before ordering.")
		case errors.Is(err, order.ErrSubmitInFlight):
			// Duplicate click while a submission is running; nothing to do.
		default:
			h.ctrl.SetSubmitError(gateway.UserMessage(err, genericOrderError))
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) BackToHome(c *gin.Context) {
	h.ctrl.BackToHome()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) AdvanceOrder(c *gin.Context) {
	orderID := c.Param("id")
	status := domain.OrderStatus(c.PostForm("status"))

	if err := h.ctrl.AdvanceOrder(c.Request.Context(), orderID, status); err != nil {
		// In-flight rejections and bad transitions are dropped silently, the
		// dashboard already disables the control; other errors land on the
		// console's own error line.
		if errors.Is(err, admin.ErrUpdateInFlight) || errors.Is(err, admin.ErrInvalidTransition) {
			log.Printf("order_advance_rejected order_id=%s status=%s reason=%q", orderID, status, err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}
