// Package report contains the read-only dashboard and report use cases.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// GetBudgetComparisonInput represents the input for the budget comparison.
type GetBudgetComparisonInput struct {
	Scope entity.Scope
	Now   time.Time
}

// BudgetComparisonRow is one budget against this month's actual spending.
type BudgetComparisonRow struct {
	derived.BudgetComparison
	Percentage float64 // spent / allocated, clamped to [0, 100]
	Remaining  decimal.Decimal
}

// GetBudgetComparisonOutput lists one row per budget in budget order.
type GetBudgetComparisonOutput struct {
	Period valueobject.MonthInterval
	Rows   []BudgetComparisonRow
}

// GetBudgetComparisonUseCase compares budgets with the month's expenses.
type GetBudgetComparisonUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	engine          *derived.Engine
}

// NewGetBudgetComparisonUseCase creates a new GetBudgetComparisonUseCase instance.
func NewGetBudgetComparisonUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	engine *derived.Engine,
) *GetBudgetComparisonUseCase {
	return &GetBudgetComparisonUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		engine:          engine,
	}
}

// Execute computes the budget comparison.
func (uc *GetBudgetComparisonUseCase) Execute(ctx context.Context, input GetBudgetComparisonInput) (*GetBudgetComparisonOutput, error) {
	if err := requireNow(input.Now); err != nil {
		return nil, err
	}

	loaded, err := loadCollections(ctx, input.Scope, uc.transactionRepo, uc.budgetRepo)
	if err != nil {
		return nil, err
	}

	comparisons := uc.engine.ComputeBudgetComparison(loaded.budgets, loaded.transactions, input.Now)

	rows := make([]BudgetComparisonRow, len(comparisons))
	for i, c := range comparisons {
		rows[i] = BudgetComparisonRow{
			BudgetComparison: c,
			Percentage:       valueobject.Percentage(c.Spent, c.Allocated),
			Remaining:        c.Allocated.Sub(c.Spent),
		}
	}

	return &GetBudgetComparisonOutput{
		Period: valueobject.MonthIntervalOf(input.Now),
		Rows:   rows,
	}, nil
}
