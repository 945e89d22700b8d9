// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

func validateBudget(budget *entity.Budget) error {
	if strings.TrimSpace(budget.Category) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}
	if !budget.AllocatedAmount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAllocatedAmount,
			"allocated amount must be greater than zero",
			domainerror.ErrInvalidAllocatedAmount,
		)
	}
	if !valueobject.FitsMoneyScale(budget.AllocatedAmount) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAllocatedAmount,
			"allocated amount must have at most 2 decimal places",
			domainerror.ErrAmountTooPrecise,
		)
	}
	return nil
}

// ensureUniqueCategory rejects a second budget for the same category in a scope.
func ensureUniqueCategory(ctx context.Context, repo adapter.BudgetRepository, scope entity.Scope, category string, excludeID uuid.UUID) error {
	exists, err := repo.ExistsByCategory(ctx, scope, category, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check budget category: %w", err)
	}
	if exists {
		return categoryExists(category)
	}
	return nil
}

// categoryExists also covers the store rejecting a write that raced past
// ensureUniqueCategory.
func categoryExists(category string) error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetCategoryExists,
		fmt.Sprintf("a budget for %q already exists", category),
		domainerror.ErrBudgetCategoryExists,
	)
}

func notFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
