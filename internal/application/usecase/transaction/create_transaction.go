// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	TrxDate     time.Time
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. The transaction type is derived
// from the category's type at this moment and frozen on the record.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Ownership: the transaction's user must own the referenced category
	if category.UserID != user.ID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to the user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}

	// Re-validated here even though the boundary already rejects non-positive
	// amounts; the use case must stay correct when called directly.
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than 0",
			domainerror.ErrNonPositiveAmount,
		)
	}

	transaction := entity.NewTransaction(
		user.ID,
		category.ID,
		entity.TransactionTypeForCategory(category.Type),
		input.Amount,
		input.TrxDate,
		strings.TrimSpace(input.Description),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: newTransactionOutput(transaction, category),
	}, nil
}
