// Package error defines domain-specific errors for the Finance Pal application.
package error

import "errors"

// Report and export domain errors.
var (
	// ErrUnknownCollection is returned when a collection name is not recognised.
	ErrUnknownCollection = errors.New("collection must be one of: transactions, bank-accounts, budgets, savings-goals")

	// ErrUnsupportedCurrency is returned when a currency code is not supported.
	ErrUnsupportedCurrency = errors.New("currency must be one of: INR, USD, EUR, GBP, JPY")

	// ErrUnsupportedExportFormat is returned when the export format is not csv or xlsx.
	ErrUnsupportedExportFormat = errors.New("format must be csv or xlsx")

	// ErrMissingReferenceTime is returned when a report is requested without a reference instant.
	ErrMissingReferenceTime = errors.New("reference time is required")
)

// ReportErrorCode defines error codes for report and export errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownCollection       ReportErrorCode = "RPT-010001"
	ErrCodeUnsupportedCurrency     ReportErrorCode = "RPT-010002"
	ErrCodeUnsupportedExportFormat ReportErrorCode = "RPT-010003"
	ErrCodeMissingReferenceTime    ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
