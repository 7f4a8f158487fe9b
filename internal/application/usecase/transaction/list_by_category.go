// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// ListByCategoryInput represents the input for listing a category's transactions.
type ListByCategoryInput struct {
	CategoryID uuid.UUID
}

// ListByCategoryOutput represents the output of listing a category's transactions.
type ListByCategoryOutput struct {
	Transactions []*TransactionOutput
}

// ListByCategoryUseCase handles listing transactions by category.
type ListByCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListByCategoryUseCase creates a new ListByCategoryUseCase instance.
func NewListByCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListByCategoryUseCase {
	return &ListByCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists all transactions recorded against a category, gated on the
// category existing.
func (uc *ListByCategoryUseCase) Execute(ctx context.Context, input ListByCategoryInput) (*ListByCategoryOutput, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	list, err := uc.transactionRepo.FindByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*TransactionOutput, len(list))
	for i, twc := range list {
		transactions[i] = newTransactionOutput(twc.Transaction, twc.Category)
	}

	return &ListByCategoryOutput{
		Transactions: transactions,
	}, nil
}
