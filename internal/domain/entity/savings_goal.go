// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal is a named target amount the user is saving towards.
type SavingsGoal struct {
	ID            uuid.UUID
	Scope         Scope
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *string // calendar date
	ImageURL      string
	AIHint        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(scope Scope, name string, target, current decimal.Decimal, deadline *string) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		Scope:         scope,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Remaining returns how much is still missing to reach the target, never negative.
func (g *SavingsGoal) Remaining() decimal.Decimal {
	rest := g.TargetAmount.Sub(g.CurrentAmount)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
