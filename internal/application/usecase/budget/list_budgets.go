// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	Scope entity.Scope
}

// BudgetView is a budget card: the stored spent amount against the allocation.
type BudgetView struct {
	Budget     *entity.Budget
	Percentage float64         // spent / allocated, clamped to [0, 100]
	Remaining  decimal.Decimal // negative when over budget
	OverBudget bool
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []BudgetView
}

// ListBudgetsUseCase lists budgets with their progress.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	views := make([]BudgetView, len(budgets))
	for i, b := range budgets {
		views[i] = BudgetView{
			Budget:     b,
			Percentage: valueobject.Percentage(b.SpentAmount, b.AllocatedAmount),
			Remaining:  b.Remaining(),
			OverBudget: b.IsOverBudget(),
		}
	}

	return &ListBudgetsOutput{Budgets: views}, nil
}
