package ports

import (
	"context"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// UserRepository defines user persistence. Users are created only by the
// bootstrap seeding step; the login path is read-only.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// AuthService verifies credentials and mints session tokens.
type AuthService interface {
	// Login returns a signed session token and the identity it encodes.
	// Every credential failure is domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	// EnsureAdmin idempotently seeds an ADMIN user with the given
	// credentials when no user exists for that email.
	EnsureAdmin(ctx context.Context, email, password string) error
}
