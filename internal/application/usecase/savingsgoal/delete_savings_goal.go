// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// DeleteSavingsGoalInput represents the input for savings goal deletion.
type DeleteSavingsGoalInput struct {
	Scope  entity.Scope
	GoalID uuid.UUID
}

// DeleteSavingsGoalUseCase handles savings goal deletion logic.
type DeleteSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	notifier *subscription.Notifier
}

// NewDeleteSavingsGoalUseCase creates a new DeleteSavingsGoalUseCase instance.
func NewDeleteSavingsGoalUseCase(
	goalRepo adapter.SavingsGoalRepository,
	notifier *subscription.Notifier,
) *DeleteSavingsGoalUseCase {
	return &DeleteSavingsGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the savings goal deletion.
func (uc *DeleteSavingsGoalUseCase) Execute(ctx context.Context, input DeleteSavingsGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.Scope, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	uc.notifier.Notify(ctx, input.Scope, entity.CollectionSavingsGoals, adapter.ChangeActionDeleted, input.GoalID)

	return nil
}
