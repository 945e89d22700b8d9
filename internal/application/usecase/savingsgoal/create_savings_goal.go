// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateSavingsGoalInput represents the input for savings goal creation.
type CreateSavingsGoalInput struct {
	Scope         entity.Scope
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *string
	ImageURL      string
	AIHint        string
}

// CreateSavingsGoalOutput represents the output of savings goal creation.
type CreateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateSavingsGoalUseCase handles savings goal creation logic.
type CreateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	notifier *subscription.Notifier
}

// NewCreateSavingsGoalUseCase creates a new CreateSavingsGoalUseCase instance.
func NewCreateSavingsGoalUseCase(
	goalRepo adapter.SavingsGoalRepository,
	notifier *subscription.Notifier,
) *CreateSavingsGoalUseCase {
	return &CreateSavingsGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateSavingsGoalUseCase) Execute(ctx context.Context, input CreateSavingsGoalInput) (*CreateSavingsGoalOutput, error) {
	goal := entity.NewSavingsGoal(
		input.Scope,
		strings.TrimSpace(input.Name),
		input.TargetAmount,
		input.CurrentAmount,
		optionalDate(input.Deadline),
	)
	goal.ImageURL = strings.TrimSpace(input.ImageURL)
	goal.AIHint = strings.TrimSpace(input.AIHint)

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	uc.notifier.Notify(ctx, goal.Scope, entity.CollectionSavingsGoals, adapter.ChangeActionCreated, goal.ID)

	return &CreateSavingsGoalOutput{Goal: goal}, nil
}
