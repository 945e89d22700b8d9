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

// GetDashboardSummaryInput represents the input for the dashboard summary.
type GetDashboardSummaryInput struct {
	Scope entity.Scope
	Now   time.Time
}

// GetDashboardSummaryOutput is the current month's dashboard.
type GetDashboardSummaryOutput struct {
	Period     valueobject.MonthInterval
	Summary    derived.DashboardSummary
	NetBalance decimal.Decimal // income minus expenses
}

// GetDashboardSummaryUseCase computes the dashboard for the month containing Now.
type GetDashboardSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewGetDashboardSummaryUseCase creates a new GetDashboardSummaryUseCase instance.
func NewGetDashboardSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute computes the dashboard summary.
func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context, input GetDashboardSummaryInput) (*GetDashboardSummaryOutput, error) {
	if err := requireNow(input.Now); err != nil {
		return nil, err
	}

	loaded, err := loadCollections(ctx, input.Scope, uc.transactionRepo, nil)
	if err != nil {
		return nil, err
	}

	summary := uc.engine.ComputeDashboardSummary(loaded.transactions, input.Now)

	return &GetDashboardSummaryOutput{
		Period:     valueobject.MonthIntervalOf(input.Now),
		Summary:    summary,
		NetBalance: summary.TotalIncome.Sub(summary.TotalExpenses),
	}, nil
}
