// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to the user")

	// ErrNonPositiveAmount is returned when the transaction amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")

	// ErrEmptyUpdate is returned when an update supplies none of the mutable fields.
	ErrEmptyUpdate = errors.New("at least one field must be provided")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-010001"
	ErrCodeTxnUserNotFound     TransactionErrorCode = "TXN-010002"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-010003"
	ErrCodeTxnCategoryNotOwned TransactionErrorCode = "TXN-010004"
	ErrCodeNonPositiveAmount   TransactionErrorCode = "TXN-010005"
	ErrCodeEmptyUpdate         TransactionErrorCode = "TXN-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
