// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Bank account domain errors.
var (
	// ErrBankAccountNotFound is returned when a bank account is not found in the scope.
	ErrBankAccountNotFound = errors.New("bank account not found")

	// ErrMissingAccountName is returned when the account name is empty.
	ErrMissingAccountName = errors.New("account name is required")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name must not exceed 100 characters")

	// ErrNegativeStartingBalance is returned when the starting balance is below zero.
	ErrNegativeStartingBalance = errors.New("starting balance cannot be negative")

	// ErrInvalidAccountColor is returned when the color is not a known swatch.
	ErrInvalidAccountColor = errors.New("color must be one of the available swatches")
)

// BankAccountErrorCode defines error codes for bank account errors.
// Format: BNK-XXYYYY where XX is category and YYYY is specific error.
type BankAccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingAccountName        BankAccountErrorCode = "BNK-010001"
	ErrCodeAccountNameTooLong        BankAccountErrorCode = "BNK-010002"
	ErrCodeNegativeStartingBalance   BankAccountErrorCode = "BNK-010003"
	ErrCodeInvalidAccountColor       BankAccountErrorCode = "BNK-010004"
	ErrCodeStartingBalanceTooPrecise BankAccountErrorCode = "BNK-010005"

	// Not found errors (02XXXX)
	ErrCodeBankAccountNotFound BankAccountErrorCode = "BNK-020001"

	// Internal errors (99XXXX)
	ErrCodeBankAccountInternalError BankAccountErrorCode = "BNK-990001"
)

// BankAccountError represents a bank account error with code and message.
type BankAccountError struct {
	Code    BankAccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BankAccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BankAccountError) Unwrap() error {
	return e.Err
}

// NewBankAccountError creates a new BankAccountError with the given code and message.
func NewBankAccountError(code BankAccountErrorCode, message string, err error) *BankAccountError {
	return &BankAccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
