// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for description.
const MaxDescriptionLength = 255

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionCategory,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !valueobject.FitsMoneyScale(amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most 2 decimal places",
			domainerror.ErrAmountTooPrecise,
		)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := valueobject.ParseCalendarDate(date); err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a valid calendar date (YYYY-MM-DD)",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

func validateClock(clock string) error {
	if clock == "" {
		return nil
	}
	if _, err := valueobject.ParseClock(clock); err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionTime,
			"time must be HH:MM or HH:MM:SS",
			domainerror.ErrInvalidTransactionTime,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description must not exceed 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

// validateRecurrence checks the schedule of a recurring transaction. A
// non-recurring transaction needs no schedule.
func validateRecurrence(recurring bool, frequency *entity.RecurrenceFrequency, endDate *string) error {
	if !recurring {
		return nil
	}
	if frequency == nil || !frequency.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrenceFrequency,
			"recurrence frequency must be one of: daily, weekly, monthly, yearly",
			domainerror.ErrInvalidRecurrenceFrequency,
		)
	}
	if endDate != nil {
		if _, err := valueobject.ParseCalendarDate(*endDate); err != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurrenceEndDate,
				"recurrence end date must be a valid calendar date (YYYY-MM-DD)",
				domainerror.ErrInvalidRecurrenceEndDate,
			)
		}
	}
	return nil
}

// validateTransaction runs every field rule against a complete transaction.
func validateTransaction(txn *entity.Transaction) error {
	checks := []error{
		validateCategory(txn.Category),
		validateAmount(txn.Amount),
		validateDate(txn.Date),
		validateClock(txn.Time),
		validateDescription(txn.Description),
		validateRecurrence(txn.IsRecurring, txn.RecurrenceFrequency, txn.RecurrenceEndDate),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// emptyToNil turns blank optional strings into nil.
func emptyToNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

// frequencyOf converts an optional raw frequency.
func frequencyOf(value *string) *entity.RecurrenceFrequency {
	value = emptyToNil(value)
	if value == nil {
		return nil
	}
	f := entity.RecurrenceFrequency(strings.ToLower(*value))
	return &f
}
