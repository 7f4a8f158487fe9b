// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-010001"
	ErrCodeEmailExists  UserErrorCode = "USR-010002"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
