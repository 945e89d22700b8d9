// Package report contains the read-only dashboard and report use cases.
package report

import (
	"context"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// GetMonthlyTrendInput represents the input for the monthly expense trend.
type GetMonthlyTrendInput struct {
	Scope entity.Scope
}

// GetMonthlyTrendOutput lists expense totals per month, oldest first.
type GetMonthlyTrendOutput struct {
	Months []derived.MonthlyTotal
}

// GetMonthlyTrendUseCase computes the expense trend over all time.
type GetMonthlyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute computes the monthly expense trend.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	loaded, err := loadCollections(ctx, input.Scope, uc.transactionRepo, nil)
	if err != nil {
		return nil, err
	}

	return &GetMonthlyTrendOutput{
		Months: uc.engine.ComputeMonthlyExpenseTrend(loaded.transactions),
	}, nil
}
