package ports

import (
	"context"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// AuthService implements signup and token issuance.
type AuthService interface {
	// Signup creates a user account. It issues no token; the client is
	// expected to log in afterwards.
	Signup(ctx context.Context, name, email, password string) error
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials so the
	// response does not leak account existence.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AdminLogin is Login restricted to accounts carrying the admin role.
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
}
