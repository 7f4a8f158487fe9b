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

// UpdateTransactionInput represents the input for transaction update. Only
// amount and description are mutable; a nil field is left untouched. Note
// that an all-whitespace description is a supplied value that trims to the
// empty string, not absence.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Amount        *decimal.Decimal
	Description   *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update. Type, user, category and date are
// never touched; the record's frozen type in particular survives every update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
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

	if input.Amount == nil && input.Description == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyUpdate,
			"at least one field must be provided",
			domainerror.ErrEmptyUpdate,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNonPositiveAmount,
				"amount must be greater than 0",
				domainerror.ErrNonPositiveAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	// Load the category for the response; the update itself never touches it.
	var category *entity.Category
	if cat, err := uc.categoryRepo.FindByID(ctx, transaction.CategoryID); err == nil {
		category = cat
	}

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(transaction, category),
	}, nil
}
