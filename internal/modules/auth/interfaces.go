package auth

import (
	"context"

	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

// Gateway is the slice of the remote gateway the auth flows use. Credential
// checking itself happens on the other side of it.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*gateway.User, error)
	Register(ctx context.Context, req gateway.RegisterRequest) error
}
