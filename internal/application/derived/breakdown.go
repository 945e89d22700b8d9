package derived

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Name  string
	Value decimal.Decimal
}

// categoryTotals accumulates per-category sums remembering first-encounter order.
type categoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
	count int
	total decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{sums: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(category string, amount decimal.Decimal) {
	if _, seen := c.sums[category]; !seen {
		c.order = append(c.order, category)
	}
	c.sums[category] = c.sums[category].Add(amount)
	c.count++
	c.total = c.total.Add(amount)
}

// sorted returns the totals largest first; equal values keep first-encounter order.
func (c *categoryTotals) sorted() []CategoryTotal {
	out := make([]CategoryTotal, len(c.order))
	for i, name := range c.order {
		out[i] = CategoryTotal{Name: name, Value: c.sums[name]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// currentMonthExpenses groups the expenses dated inside the month of now.
func (e *Engine) currentMonthExpenses(op string, txns []*entity.Transaction, now time.Time) *categoryTotals {
	interval := valueobject.MonthIntervalOf(now)
	totals := newCategoryTotals()
	for _, txn := range txns {
		if txn.IsIncome() {
			continue
		}
		if !e.inMonth(op, txn, interval) {
			continue
		}
		totals.add(txn.Category, txn.Amount)
	}
	return totals
}

// ComputeCurrentMonthCategoryBreakdown sums the current month's expenses per
// category, largest category first.
func (e *Engine) ComputeCurrentMonthCategoryBreakdown(txns []*entity.Transaction, now time.Time) []CategoryTotal {
	return e.currentMonthExpenses("category_breakdown", txns, now).sorted()
}
