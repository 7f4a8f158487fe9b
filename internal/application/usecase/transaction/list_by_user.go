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

// ListByUserInput represents the input for listing a user's transactions.
type ListByUserInput struct {
	UserID uuid.UUID
}

// ListByUserOutput represents the output of listing a user's transactions.
type ListByUserOutput struct {
	Transactions []*TransactionOutput
}

// ListByUserUseCase handles listing transactions by owning user.
type ListByUserUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
}

// NewListByUserUseCase creates a new ListByUserUseCase instance.
func NewListByUserUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
) *ListByUserUseCase {
	return &ListByUserUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists all transactions owned by a user. The user is resolved first
// so a typo'd id yields a consistent not-found failure instead of an empty list.
func (uc *ListByUserUseCase) Execute(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	list, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*TransactionOutput, len(list))
	for i, twc := range list {
		transactions[i] = newTransactionOutput(twc.Transaction, twc.Category)
	}

	return &ListByUserOutput{
		Transactions: transactions,
	}, nil
}
