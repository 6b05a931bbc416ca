package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (*gateway.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.User), args.Error(1)
}

func (m *MockGateway) Register(ctx context.Context, req gateway.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestService_Login_ReturnsBackendRole(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Login", mock.Anything, "s@nmamit.in", "pw").Return(&gateway.User{Role: domain.RoleStudent}, nil)
	service := NewService(gw)

	role, err := service.Login(context.Background(), LoginRequest{Email: "s@nmamit.in", Password: "pw"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, role)
}

func TestService_Login_GatewayErrorPassedThrough(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Login", mock.Anything, "s@nmamit.in", "bad").Return(nil, &gateway.Error{StatusCode: 401, Message: "Invalid credentials"})
	service := NewService(gw)

	role, err := service.Login(context.Background(), LoginRequest{Email: "s@nmamit.in", Password: "bad"})

	assert.Error(t, err)
	assert.Equal(t, domain.RoleGuest, role)
}

func TestService_Register_PasswordMismatchRejectedLocally(t *testing.T) {
	gw := new(MockGateway)
	service := NewService(gw)

	err := service.Register(context.Background(), RegisterRequest{
		Name:            "A",
		Email:           "a@nmamit.in",
		Password:        "one",
		ConfirmPassword: "two",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	gw.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestService_Register_Success(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Register", mock.Anything, gateway.RegisterRequest{
		Name: "A", Email: "a@nmamit.in", Password: "secret",
	}).Return(nil)
	service := NewService(gw)

	err := service.Register(context.Background(), RegisterRequest{
		Name:            "A",
		Email:           "a@nmamit.in",
		Password:        "secret",
		ConfirmPassword: "secret",
	})

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestService_AdminLogin_NonAdminRoleDenied(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Login", mock.Anything, "s@nmamit.in", "pw").Return(&gateway.User{Role: domain.RoleStudent}, nil)
	service := NewService(gw)

	err := service.AdminLogin(context.Background(), LoginRequest{Email: "s@nmamit.in", Password: "pw"})

	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestService_AdminLogin_AdminRoleAccepted(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Login", mock.Anything, "admin@nmamit.in", "pw").Return(&gateway.User{Role: domain.RoleAdmin}, nil)
	service := NewService(gw)

	err := service.AdminLogin(context.Background(), LoginRequest{Email: "admin@nmamit.in", Password: "pw"})

	assert.NoError(t, err)
}
