// Package budget contains budget use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Scope           entity.Scope
	Category        string
	AllocatedAmount decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   *subscription.Notifier
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	notifier *subscription.Notifier,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		notifier:   notifier,
	}
}

// Execute performs the budget creation. New budgets start with nothing spent.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	budget := entity.NewBudget(input.Scope, strings.TrimSpace(input.Category), input.AllocatedAmount)
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	if err := ensureUniqueCategory(ctx, uc.budgetRepo, budget.Scope, budget.Category, uuid.Nil); err != nil {
		return nil, err
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetCategoryExists) {
			return nil, categoryExists(budget.Category)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.notifier.Notify(ctx, budget.Scope, entity.CollectionBudgets, adapter.ChangeActionCreated, budget.ID)

	return &CreateBudgetOutput{Budget: budget}, nil
}
