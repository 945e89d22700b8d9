// Package derived computes read-only views over snapshots of a scope's
// collections: account balances, filtered transaction lists, monthly expense
// trends, category breakdowns, budget comparisons and the dashboard summary.
//
// Every operation is a pure function of its arguments. Inputs are never
// mutated, outputs are freshly allocated, and the reference instant for
// "current month" computations is always passed in by the caller.
package derived

import (
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// Engine evaluates derived views. Its only dependency is the logger used to
// report records that had to be skipped, so a single Engine can be shared
// freely between goroutines.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new Engine. A nil logger falls back to slog.Default().
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: logger.With("component", "derived"),
	}
}

// calendarDate parses the transaction date, reporting a diagnostic when it is malformed.
func (e *Engine) calendarDate(op string, txn *entity.Transaction) (civil.Date, bool) {
	d, err := valueobject.ParseCalendarDate(txn.Date)
	if err != nil {
		e.logger.Warn("Skipping transaction with unparseable date",
			"operation", op,
			"transaction_id", txn.ID,
			"date", txn.Date,
		)
		return civil.Date{}, false
	}
	return d, true
}

// inMonth reports whether the transaction date falls inside the interval.
// Unparseable dates never fall inside.
func (e *Engine) inMonth(op string, txn *entity.Transaction, interval valueobject.MonthInterval) bool {
	d, ok := e.calendarDate(op, txn)
	if !ok {
		return false
	}
	return interval.Contains(d)
}
