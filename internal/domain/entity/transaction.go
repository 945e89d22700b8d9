// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurrenceFrequency represents how often a recurring transaction repeats.
type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
	RecurrenceYearly  RecurrenceFrequency = "yearly"
)

// RecurrenceFrequencies lists the supported frequencies.
var RecurrenceFrequencies = []RecurrenceFrequency{
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceMonthly,
	RecurrenceYearly,
}

// IsValid reports whether the frequency is supported.
func (f RecurrenceFrequency) IsValid() bool {
	switch f {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Transaction is a single dated income or expense record. Amount is always
// positive; the direction comes from Classify(Category).
type Transaction struct {
	ID                  uuid.UUID
	Scope               Scope
	Date                string // calendar date, "2006-01-02"
	Time                string // optional clock time, "15:04"
	Category            string
	Amount              decimal.Decimal
	Description         string
	BankAccountID       *uuid.UUID
	IsRecurring         bool
	RecurrenceFrequency *RecurrenceFrequency
	RecurrenceEndDate   *string
	CreatedAt           *time.Time
	UpdatedAt           time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	scope Scope,
	date string,
	clock string,
	category string,
	amount decimal.Decimal,
	description string,
	bankAccountID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Scope:         scope,
		Date:          date,
		Time:          clock,
		Category:      category,
		Amount:        amount,
		Description:   description,
		BankAccountID: bankAccountID,
		CreatedAt:     &now,
		UpdatedAt:     now,
	}
}

// Classification returns whether the transaction is income or expense.
func (t *Transaction) Classification() Classification {
	return Classify(t.Category)
}

// IsIncome reports whether the transaction is classified as income.
func (t *Transaction) IsIncome() bool {
	return t.Classification() == ClassificationIncome
}

// SetRecurrence marks the transaction recurring with the given schedule, or
// clears the schedule when recurring is false.
func (t *Transaction) SetRecurrence(recurring bool, frequency *RecurrenceFrequency, endDate *string) {
	t.IsRecurring = recurring
	if !recurring {
		t.RecurrenceFrequency = nil
		t.RecurrenceEndDate = nil
		return
	}
	t.RecurrenceFrequency = frequency
	t.RecurrenceEndDate = endDate
}
