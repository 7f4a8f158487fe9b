// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByUser retrieves all transactions owned by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error)

	// FindByCategory retrieves all transactions recorded against the given category.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.TransactionWithCategory, error)

	// FindByUserAndDateRange retrieves all transactions for a user whose
	// date falls within [start, end], both bounds inclusive.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
