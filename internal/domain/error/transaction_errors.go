// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the scope.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("amount must be a positive number")

	// ErrInvalidTransactionDate is returned when the date is missing or not YYYY-MM-DD.
	ErrInvalidTransactionDate = errors.New("date must be a valid calendar date (YYYY-MM-DD)")

	// ErrInvalidTransactionTime is returned when the time of day cannot be parsed.
	ErrInvalidTransactionTime = errors.New("time must be HH:MM or HH:MM:SS")

	// ErrMissingTransactionCategory is returned when no category is given.
	ErrMissingTransactionCategory = errors.New("category is required")

	// ErrDescriptionTooLong is returned when description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description must not exceed 255 characters")

	// ErrInvalidRecurrenceFrequency is returned when a recurring transaction has no valid frequency.
	ErrInvalidRecurrenceFrequency = errors.New("recurrence frequency must be one of: daily, weekly, monthly, yearly")

	// ErrInvalidRecurrenceEndDate is returned when the recurrence end date cannot be parsed.
	ErrInvalidRecurrenceEndDate = errors.New("recurrence end date must be a valid calendar date (YYYY-MM-DD)")

	// ErrInvalidAccountSelector is returned when an account filter is neither all, none nor an id.
	ErrInvalidAccountSelector = errors.New("account must be 'all', 'none' or a bank account id")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate     TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionTime     TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionCategory TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidRecurrenceFrequency TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidRecurrenceEndDate   TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidAccountSelector     TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidTransactionFilter   TransactionErrorCode = "TXN-010009"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
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
