// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found in the scope.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrInvalidTargetAmount is returned when the target amount is not strictly positive.
	ErrInvalidTargetAmount = errors.New("target amount must be a positive number")

	// ErrInvalidCurrentAmount is returned when the current amount is negative.
	ErrInvalidCurrentAmount = errors.New("current amount cannot be negative")

	// ErrCurrentExceedsTarget is returned when the current amount is above the target.
	ErrCurrentExceedsTarget = errors.New("current amount cannot exceed target amount")

	// ErrInvalidGoalDeadline is returned when the deadline cannot be parsed.
	ErrInvalidGoalDeadline = errors.New("deadline must be a valid calendar date (YYYY-MM-DD)")
)

// SavingsGoalErrorCode defines error codes for savings goal errors.
// Format: SVG-XXYYYY where XX is category and YYYY is specific error.
type SavingsGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGoalName      SavingsGoalErrorCode = "SVG-010001"
	ErrCodeInvalidTargetAmount  SavingsGoalErrorCode = "SVG-010002"
	ErrCodeInvalidCurrentAmount SavingsGoalErrorCode = "SVG-010003"
	ErrCodeCurrentExceedsTarget SavingsGoalErrorCode = "SVG-010004"
	ErrCodeInvalidGoalDeadline  SavingsGoalErrorCode = "SVG-010005"

	// Not found errors (02XXXX)
	ErrCodeSavingsGoalNotFound SavingsGoalErrorCode = "SVG-020001"

	// Internal errors (99XXXX)
	ErrCodeSavingsGoalInternalError SavingsGoalErrorCode = "SVG-990001"
)

// SavingsGoalError represents a savings goal error with code and message.
type SavingsGoalError struct {
	Code    SavingsGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsGoalError) Unwrap() error {
	return e.Err
}

// NewSavingsGoalError creates a new SavingsGoalError with the given code and message.
func NewSavingsGoalError(code SavingsGoalErrorCode, message string, err error) *SavingsGoalError {
	return &SavingsGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
