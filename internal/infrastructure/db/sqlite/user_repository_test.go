package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

func TestUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	user := &domain.User{
		ID:           "user-1",
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleAdmin,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != "user-1" || got.Role != domain.RoleAdmin || got.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
