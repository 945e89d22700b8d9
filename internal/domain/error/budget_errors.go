// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the scope.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrMissingBudgetCategory is returned when no category is given.
	ErrMissingBudgetCategory = errors.New("category is required")

	// ErrInvalidAllocatedAmount is returned when the allocated amount is not strictly positive.
	ErrInvalidAllocatedAmount = errors.New("allocated amount must be a positive number")

	// ErrBudgetCategoryExists is returned when the scope already has a budget for the category.
	ErrBudgetCategoryExists = errors.New("a budget for this category already exists")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetCategory  BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidAllocatedAmount BudgetErrorCode = "BDG-010002"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"

	// Conflict errors (03XXXX)
	ErrCodeBudgetCategoryExists BudgetErrorCode = "BDG-030001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
