// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// UpdateSavingsGoalInput represents a partial savings goal update. An empty
// Deadline string clears the deadline.
type UpdateSavingsGoalInput struct {
	Scope         entity.Scope
	GoalID        uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *string
	ImageURL      *string
	AIHint        *string
}

// UpdateSavingsGoalOutput represents the output of savings goal update.
type UpdateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateSavingsGoalUseCase handles savings goal update logic.
type UpdateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	notifier *subscription.Notifier
}

// NewUpdateSavingsGoalUseCase creates a new UpdateSavingsGoalUseCase instance.
func NewUpdateSavingsGoalUseCase(
	goalRepo adapter.SavingsGoalRepository,
	notifier *subscription.Notifier,
) *UpdateSavingsGoalUseCase {
	return &UpdateSavingsGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the savings goal update.
func (uc *UpdateSavingsGoalUseCase) Execute(ctx context.Context, input UpdateSavingsGoalInput) (*UpdateSavingsGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.Scope, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	if input.Name != nil {
		goal.Name = strings.TrimSpace(*input.Name)
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		goal.Deadline = optionalDate(input.Deadline)
	}
	if input.ImageURL != nil {
		goal.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.AIHint != nil {
		goal.AIHint = strings.TrimSpace(*input.AIHint)
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	uc.notifier.Notify(ctx, goal.Scope, entity.CollectionSavingsGoals, adapter.ChangeActionUpdated, goal.ID)

	return &UpdateSavingsGoalOutput{Goal: goal}, nil
}
