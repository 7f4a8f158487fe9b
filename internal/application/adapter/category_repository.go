// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories owned by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)
}
