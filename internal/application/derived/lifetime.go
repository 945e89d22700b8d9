package derived

import (
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// LifetimeTotals holds the all-time income and expense sums of a scope.
type LifetimeTotals struct {
	TotalEarned      decimal.Decimal
	TotalSpent       decimal.Decimal
	TransactionCount int
}

// ComputeLifetimeTotals sums every transaction by classification. Dates are
// not consulted, so records with malformed dates still count.
func (e *Engine) ComputeLifetimeTotals(txns []*entity.Transaction) LifetimeTotals {
	totals := LifetimeTotals{
		TotalEarned: decimal.Zero,
		TotalSpent:  decimal.Zero,
	}
	for _, txn := range txns {
		totals.TransactionCount++
		if txn.IsIncome() {
			totals.TotalEarned = totals.TotalEarned.Add(txn.Amount)
			continue
		}
		totals.TotalSpent = totals.TotalSpent.Add(txn.Amount)
	}
	return totals
}
