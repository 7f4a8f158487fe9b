// Package report contains the income/expense reporting use case.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GenerateReportInput represents the input for report generation. Both date
// bounds are inclusive.
type GenerateReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	UserID       uuid.UUID
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// GenerateReportUseCase aggregates a user's transactions over a date range
// into income/expense totals and a balance.
type GenerateReportUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute generates the report. The date range is validated before storage is
// queried; all sums are exact decimal arithmetic and an empty range yields
// three zero values.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"endDate must be >= startDate",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for report: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, trx := range transactions {
		switch trx.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(trx.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(trx.Amount)
		}
	}

	return &GenerateReportOutput{
		UserID:       input.UserID,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}, nil
}
