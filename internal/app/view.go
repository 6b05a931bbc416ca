package app

// View names the single screen the root controller currently renders.
type View string

const (
	ViewLogin          View = "login"
	ViewAdminLogin     View = "admin-login"
	ViewHome           View = "home"
	ViewMenu           View = "menu"
	ViewConfirmation   View = "confirmation"
	ViewAdminDashboard View = "admin-dashboard"
	ViewAbout          View = "about"
	ViewContact        View = "contact"
	ViewSupport        View = "support"
)

// Known reports whether the view is part of the fixed enumeration. Anything
// else renders the recovery screen.
func (v View) Known() bool {
	switch v {
	case ViewLogin, ViewAdminLogin, ViewHome, ViewMenu, ViewConfirmation,
		ViewAdminDashboard, ViewAbout, ViewContact, ViewSupport:
		return true
	}
	return false
}

// PinkBackground picks the page background family. Purely presentational.
func (v View) PinkBackground() bool {
	return v == ViewLogin || v == ViewHome || v == ViewConfirmation
}
