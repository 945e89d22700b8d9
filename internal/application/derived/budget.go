package derived

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// BudgetComparison sets a budget's allocation against what was actually spent
// this month.
type BudgetComparison struct {
	Category  string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
}

// ComputeBudgetComparison emits one row per budget, in the given order, with
// Spent summed from the current month's expenses of the budget's category.
// The stored Budget.SpentAmount is not consulted.
func (e *Engine) ComputeBudgetComparison(budgets []*entity.Budget, txns []*entity.Transaction, now time.Time) []BudgetComparison {
	spent := e.currentMonthExpenses("budget_comparison", txns, now).sums

	rows := make([]BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		rows = append(rows, BudgetComparison{
			Category:  budget.Category,
			Allocated: budget.AllocatedAmount,
			Spent:     spent[budget.Category],
		})
	}
	return rows
}
