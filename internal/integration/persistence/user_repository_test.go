package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and finds a user by id", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("Ana Lima", "ana@example.com")

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error on create: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error on find: %v", err)
		}

		if found.Email != "ana@example.com" {
			t.Errorf("expected email ana@example.com, got %q", found.Email)
		}
		if found.FullName != "Ana Lima" {
			t.Errorf("expected full name Ana Lima, got %q", found.FullName)
		}
	})

	t.Run("finds a user by email", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("Ana Lima", "ana@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error on create: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error on find: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("translates a missing row to the domain sentinel", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("reports email existence", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("Ana Lima", "ana@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error on create: %v", err)
		}

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected email to exist")
		}

		exists, err = repo.ExistsByEmail(ctx, "other@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected email to not exist")
		}
	})

	t.Run("lists all users", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		for _, u := range []*entity.User{
			entity.NewUser("Ana Lima", "ana@example.com"),
			entity.NewUser("Bia Costa", "bia@example.com"),
		} {
			if err := repo.Create(ctx, u); err != nil {
				t.Fatalf("unexpected error on create: %v", err)
			}
		}

		users, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("expected 2 users, got %d", len(users))
		}
	})
}
