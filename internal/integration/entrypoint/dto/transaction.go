// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fintrack/backend/internal/application/usecase/report"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount positivity is also re-checked inside the use case.
type CreateTransactionRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	TrxDate     string  `json:"trx_date" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Each mutable field is independently present-or-absent; an all-whitespace
// description is a supplied value that the core trims to an empty string.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts are rendered with two decimal places.
type TransactionResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	TrxDate      string    `json:"trx_date"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReportResponse represents the income/expense report in API responses.
type ReportResponse struct {
	UserID       string `json:"user_id"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		UserID:       txn.UserID.String(),
		CategoryID:   txn.CategoryID.String(),
		CategoryName: txn.CategoryName,
		Type:         string(txn.Type),
		Amount:       txn.Amount.StringFixed(2),
		TrxDate:      txn.TrxDate.Format("2006-01-02"),
		Description:  txn.Description,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of TransactionOutputs to response DTOs.
func ToTransactionListResponse(txns []*transaction.TransactionOutput) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// ToReportResponse converts a GenerateReportOutput to a ReportResponse DTO.
func ToReportResponse(out *report.GenerateReportOutput) ReportResponse {
	return ReportResponse{
		UserID:       out.UserID.String(),
		TotalIncome:  out.TotalIncome.StringFixed(2),
		TotalExpense: out.TotalExpense.StringFixed(2),
		Balance:      out.Balance.StringFixed(2),
	}
}
