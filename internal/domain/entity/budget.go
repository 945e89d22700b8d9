// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending allocation for one category.
// SpentAmount is a stored value that is not recomputed from transactions;
// reports derive their own spent figure instead.
type Budget struct {
	ID              uuid.UUID
	Scope           Scope
	Category        string
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBudget creates a new Budget entity with nothing spent.
func NewBudget(scope Scope, category string, allocatedAmount decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:              uuid.New(),
		Scope:           scope,
		Category:        category,
		AllocatedAmount: allocatedAmount,
		SpentAmount:     decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Remaining returns allocated minus the stored spent amount; negative when over budget.
func (b *Budget) Remaining() decimal.Decimal {
	return b.AllocatedAmount.Sub(b.SpentAmount)
}

// IsOverBudget reports whether the stored spent amount exceeds the allocation.
func (b *Budget) IsOverBudget() bool {
	return b.SpentAmount.GreaterThan(b.AllocatedAmount)
}
