package auth

import (
	"context"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

// Service contains the client-side authentication flows. It does no
// credential checking itself; the gateway's answer is taken at face value.
type Service struct {
	gw Gateway
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Login authenticates and returns the role the backend assigned.
func (s *Service) Login(ctx context.Context, req LoginRequest) (domain.Role, error) {
	user, err := s.gw.Login(ctx, req.Email, req.Password)
	if err != nil {
		return domain.RoleGuest, err
	}
	return user.Role, nil
}

// Register creates an account. The password mismatch check runs locally
// before any network call.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return s.gw.Register(ctx, gateway.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
}

// AdminLogin authenticates and then requires the admin role. A successful
// login with any other role is denied outright; no partial session results.
func (s *Service) AdminLogin(ctx context.Context, req LoginRequest) error {
	user, err := s.gw.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleAdmin {
		return ErrNotAdmin
	}
	return nil
}
