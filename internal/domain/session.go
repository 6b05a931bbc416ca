package domain

type Role string

const (
	RoleGuest   Role = "guest"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Session is the client's belief about who is logged in. It lives only in
// memory; a restart drops back to the login screen on purpose.
type Session struct {
	Authenticated bool
	Role          Role
}

// NewSession returns the unauthenticated guest session the process starts with.
func NewSession() Session {
	return Session{Authenticated: false, Role: RoleGuest}
}
