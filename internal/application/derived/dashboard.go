package derived

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// ChartPalette is cycled through to color the category breakdown.
var ChartPalette = []string{
	"hsl(var(--chart-1))",
	"hsl(var(--chart-2))",
	"hsl(var(--chart-3))",
	"hsl(var(--chart-4))",
	"hsl(var(--chart-5))",
	"hsl(var(--primary))",
	"hsl(var(--accent))",
}

// ColoredCategoryTotal is a breakdown entry with its chart color.
type ColoredCategoryTotal struct {
	CategoryTotal
	Fill string
}

// DashboardSummary holds the current month's headline figures.
type DashboardSummary struct {
	TotalIncome             decimal.Decimal
	TotalExpenses           decimal.Decimal
	ExpenseTransactionCount int
	CategoryBreakdown       []ColoredCategoryTotal
}

// ComputeDashboardSummary totals the current month's income and expenses and
// breaks expenses down by category. Colors follow the rank of each category
// in the sorted breakdown.
func (e *Engine) ComputeDashboardSummary(txns []*entity.Transaction, now time.Time) DashboardSummary {
	interval := valueobject.MonthIntervalOf(now)

	income := decimal.Zero
	expenses := newCategoryTotals()
	for _, txn := range txns {
		if !e.inMonth("dashboard_summary", txn, interval) {
			continue
		}
		if txn.IsIncome() {
			income = income.Add(txn.Amount)
			continue
		}
		expenses.add(txn.Category, txn.Amount)
	}

	sorted := expenses.sorted()
	breakdown := make([]ColoredCategoryTotal, len(sorted))
	for i, total := range sorted {
		breakdown[i] = ColoredCategoryTotal{
			CategoryTotal: total,
			Fill:          ChartPalette[i%len(ChartPalette)],
		}
	}

	return DashboardSummary{
		TotalIncome:             income,
		TotalExpenses:           expenses.total,
		ExpenseTransactionCount: expenses.count,
		CategoryBreakdown:       breakdown,
	}
}
