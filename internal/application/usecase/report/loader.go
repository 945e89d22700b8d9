// Package report contains the read-only dashboard and report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// collections holds what a report reads from the scope's store.
type collections struct {
	transactions []*entity.Transaction
	budgets      []*entity.Budget
}

// loadCollections reads the transactions and, when budgetRepo is set, the
// budgets of the scope concurrently.
func loadCollections(
	ctx context.Context,
	scope entity.Scope,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) (*collections, error) {
	var loaded collections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txns, err := transactionRepo.FindAll(gctx, scope)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		loaded.transactions = txns
		return nil
	})
	if budgetRepo != nil {
		g.Go(func() error {
			budgets, err := budgetRepo.FindAll(gctx, scope)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			loaded.budgets = budgets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &loaded, nil
}

// requireNow rejects a missing reference time. Month-relative reports are
// meaningless without one.
func requireNow(now time.Time) error {
	if now.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReferenceTime,
			"reference time is required",
			domainerror.ErrMissingReferenceTime,
		)
	}
	return nil
}
