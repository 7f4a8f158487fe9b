// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionTypeForCategory derives the transaction type from a category
// type. The derived value is frozen on the transaction at creation time and
// is never re-derived afterward.
func TransactionTypeForCategory(categoryType CategoryType) TransactionType {
	if categoryType == CategoryTypeIncome {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// Transaction represents a money-movement record in the FinTrack system.
// UserID always equals the owning user of the referenced category.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Type        TransactionType // Snapshot of the category type at creation time.
	Amount      decimal.Decimal // Strictly positive, scale 2.
	TrxDate     time.Time       // Calendar date, no time component.
	Description string          // Optional, stored trimmed.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	trxDate time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		TrxDate:     trxDate,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// ReportTotals represents aggregated income/expense totals for one user over
// an inclusive date range.
type ReportTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}
