// Package budget contains budget use cases.
package budget

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

// UpdateBudgetInput represents a partial budget update.
type UpdateBudgetInput struct {
	Scope           entity.Scope
	BudgetID        uuid.UUID
	Category        *string
	AllocatedAmount *decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   *subscription.Notifier
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	notifier *subscription.Notifier,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		notifier:   notifier,
	}
}

// Execute performs the budget update. The stored spent amount is never changed here.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.Scope, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	renamed := false
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		renamed = category != budget.Category
		budget.Category = category
	}
	if input.AllocatedAmount != nil {
		budget.AllocatedAmount = *input.AllocatedAmount
	}

	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	if renamed {
		if err := ensureUniqueCategory(ctx, uc.budgetRepo, budget.Scope, budget.Category, budget.ID); err != nil {
			return nil, err
		}
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetCategoryExists) {
			return nil, categoryExists(budget.Category)
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.notifier.Notify(ctx, budget.Scope, entity.CollectionBudgets, adapter.ChangeActionUpdated, budget.ID)

	return &UpdateBudgetOutput{Budget: budget}, nil
}
