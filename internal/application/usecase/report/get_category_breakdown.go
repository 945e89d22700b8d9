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

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	Scope entity.Scope
	Now   time.Time
}

// CategoryShare is a category's expense total and its share of all expenses.
type CategoryShare struct {
	Name       string
	Value      decimal.Decimal
	Percentage float64
}

// GetCategoryBreakdownOutput is the current month's expenses by category,
// largest first.
type GetCategoryBreakdownOutput struct {
	Period        valueobject.MonthInterval
	TotalExpenses decimal.Decimal
	Categories    []CategoryShare
}

// GetCategoryBreakdownUseCase computes the current month's category breakdown.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute computes the category breakdown.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if err := requireNow(input.Now); err != nil {
		return nil, err
	}

	loaded, err := loadCollections(ctx, input.Scope, uc.transactionRepo, nil)
	if err != nil {
		return nil, err
	}

	totals := uc.engine.ComputeCurrentMonthCategoryBreakdown(loaded.transactions, input.Now)

	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t.Value)
	}

	categories := make([]CategoryShare, len(totals))
	for i, t := range totals {
		categories[i] = CategoryShare{
			Name:       t.Name,
			Value:      t.Value,
			Percentage: valueobject.Percentage(t.Value, total),
		}
	}

	return &GetCategoryBreakdownOutput{
		Period:        valueobject.MonthIntervalOf(input.Now),
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
