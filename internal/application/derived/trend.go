package derived

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// MonthlyTotal is the expense total of one calendar month.
type MonthlyTotal struct {
	Month valueobject.MonthKey
	Label string
	Total decimal.Decimal
}

// ComputeMonthlyExpenseTrend sums expenses per calendar month, oldest month
// first. Income is excluded, unparseable dates are skipped, and months
// without expenses are left out rather than reported as zero.
func (e *Engine) ComputeMonthlyExpenseTrend(txns []*entity.Transaction) []MonthlyTotal {
	totals := make(map[valueobject.MonthKey]decimal.Decimal)
	for _, txn := range txns {
		if txn.IsIncome() {
			continue
		}
		d, ok := e.calendarDate("monthly_expense_trend", txn)
		if !ok {
			continue
		}
		key := valueobject.MonthKeyOf(d)
		totals[key] = totals[key].Add(txn.Amount)
	}

	months := make([]valueobject.MonthKey, 0, len(totals))
	for key := range totals {
		months = append(months, key)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	trend := make([]MonthlyTotal, 0, len(months))
	for _, key := range months {
		trend = append(trend, MonthlyTotal{
			Month: key,
			Label: key.Label(),
			Total: totals[key],
		})
	}
	return trend
}
