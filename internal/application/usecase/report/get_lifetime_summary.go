// Package report contains the read-only dashboard and report use cases.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// GetLifetimeSummaryInput represents the input for the lifetime summary.
type GetLifetimeSummaryInput struct {
	Scope entity.Scope
}

// GetLifetimeSummaryOutput holds the all-time totals of the scope.
type GetLifetimeSummaryOutput struct {
	Totals derived.LifetimeTotals
	Net    decimal.Decimal
}

// GetLifetimeSummaryUseCase totals every transaction the scope has recorded.
type GetLifetimeSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewGetLifetimeSummaryUseCase creates a new GetLifetimeSummaryUseCase instance.
func NewGetLifetimeSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *GetLifetimeSummaryUseCase {
	return &GetLifetimeSummaryUseCase{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute computes the lifetime summary.
func (uc *GetLifetimeSummaryUseCase) Execute(ctx context.Context, input GetLifetimeSummaryInput) (*GetLifetimeSummaryOutput, error) {
	loaded, err := loadCollections(ctx, input.Scope, uc.transactionRepo, nil)
	if err != nil {
		return nil, err
	}

	totals := uc.engine.ComputeLifetimeTotals(loaded.transactions)

	return &GetLifetimeSummaryOutput{
		Totals: totals,
		Net:    totals.TotalEarned.Sub(totals.TotalSpent),
	}, nil
}
