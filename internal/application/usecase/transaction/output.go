// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction as returned by use cases,
// including the name of its category for boundary responses.
type TransactionOutput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.TransactionType
	Amount       decimal.Decimal
	TrxDate      time.Time
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// newTransactionOutput builds a TransactionOutput from a transaction and its category.
func newTransactionOutput(trx *entity.Transaction, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          trx.ID,
		UserID:      trx.UserID,
		CategoryID:  trx.CategoryID,
		Type:        trx.Type,
		Amount:      trx.Amount,
		TrxDate:     trx.TrxDate,
		Description: trx.Description,
		CreatedAt:   trx.CreatedAt,
		UpdatedAt:   trx.UpdatedAt,
	}

	if category != nil {
		out.CategoryName = category.Name
	}

	return out
}
