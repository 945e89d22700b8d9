// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// ListSavingsGoalsInput represents the input for listing savings goals.
type ListSavingsGoalsInput struct {
	Scope entity.Scope
}

// SavingsGoalView is a goal with its progress toward the target.
type SavingsGoalView struct {
	Goal      *entity.SavingsGoal
	Progress  float64 // current / target, clamped to [0, 100]
	Remaining decimal.Decimal
	Reached   bool
}

// ListSavingsGoalsOutput represents the output of listing savings goals.
type ListSavingsGoalsOutput struct {
	Goals []SavingsGoalView
}

// ListSavingsGoalsUseCase lists savings goals, newest first.
type ListSavingsGoalsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewListSavingsGoalsUseCase creates a new ListSavingsGoalsUseCase instance.
func NewListSavingsGoalsUseCase(goalRepo adapter.SavingsGoalRepository) *ListSavingsGoalsUseCase {
	return &ListSavingsGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal listing.
func (uc *ListSavingsGoalsUseCase) Execute(ctx context.Context, input ListSavingsGoalsInput) (*ListSavingsGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	views := make([]SavingsGoalView, len(goals))
	for i, g := range goals {
		views[i] = SavingsGoalView{
			Goal:      g,
			Progress:  valueobject.Percentage(g.CurrentAmount, g.TargetAmount),
			Remaining: g.Remaining(),
			Reached:   g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount),
		}
	}

	return &ListSavingsGoalsOutput{Goals: views}, nil
}
