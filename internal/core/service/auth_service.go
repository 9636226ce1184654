package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
	"github.com/infinitechange/coaching-site/internal/core/token"
)

const bcryptCost = 10

// AuthService implements credential verification and session token issuance.
type AuthService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Login looks up the user by email and compares the password against the
// stored bcrypt hash. Unknown email, a user without a local password and a
// wrong password all return domain.ErrInvalidCredentials; the caller cannot
// enumerate accounts. The underlying cause is logged server-side only.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug().Str("email", email).Msg("login for unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.PasswordHash == "" {
		s.logger.Debug().Str("email", email).Msg("login for account without local password")
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login with wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	identity := user.Identity()
	signed, err := s.codec.Issue(identity)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", email).Str("role", string(identity.Role)).Msg("login succeeded")
	return signed, identity, nil
}

// EnsureAdmin seeds the bootstrap ADMIN account. It is a no-op when a user
// already exists for the email, so repeated startups are safe.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Admin User",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("admin user seeded")
	return nil
}
