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

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles transaction retrieval logic.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction retrieval.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	twc, err := uc.transactionRepo.FindByIDWithCategory(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return &GetTransactionOutput{
		Transaction: newTransactionOutput(twc.Transaction, twc.Category),
	}, nil
}
