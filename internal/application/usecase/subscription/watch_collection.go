// Package subscription contains the live-update use cases: announcing changes
// after writes and watching a collection for changes.
package subscription

import (
	"context"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// Snapshot is the full content of one collection at a point in time. Only
// the slice matching Collection is set.
type Snapshot struct {
	Collection   entity.Collection
	Transactions []*entity.Transaction
	BankAccounts []*entity.BankAccount
	Budgets      []*entity.Budget
	SavingsGoals []*entity.SavingsGoal
}

// WatchCollectionInput represents the input for watching a collection.
type WatchCollectionInput struct {
	Scope      entity.Scope
	Collection entity.Collection
	OnChange   func(Snapshot)
	OnError    func(error)
}

// WatchCollectionUseCase registers live subscriptions on any collection.
type WatchCollectionUseCase struct {
	feed            adapter.ChangeFeed
	transactionRepo adapter.TransactionRepository
	bankAccountRepo adapter.BankAccountRepository
	budgetRepo      adapter.BudgetRepository
	savingsGoalRepo adapter.SavingsGoalRepository
}

// NewWatchCollectionUseCase creates a new WatchCollectionUseCase instance.
func NewWatchCollectionUseCase(
	feed adapter.ChangeFeed,
	transactionRepo adapter.TransactionRepository,
	bankAccountRepo adapter.BankAccountRepository,
	budgetRepo adapter.BudgetRepository,
	savingsGoalRepo adapter.SavingsGoalRepository,
) *WatchCollectionUseCase {
	return &WatchCollectionUseCase{
		feed:            feed,
		transactionRepo: transactionRepo,
		bankAccountRepo: bankAccountRepo,
		budgetRepo:      budgetRepo,
		savingsGoalRepo: savingsGoalRepo,
	}
}

// Execute starts watching the requested collection.
func (uc *WatchCollectionUseCase) Execute(ctx context.Context, input WatchCollectionInput) (adapter.Unsubscribe, error) {
	if input.OnChange == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"a change callback is required",
			nil,
		)
	}
	if uc.feed == nil {
		return nil, domainerror.ErrFeedUnavailable
	}

	c := input.Collection
	switch c {
	case entity.CollectionTransactions:
		return Watch(ctx, uc.feed, input.Scope, c, uc.transactionRepo.FindAll,
			func(records []*entity.Transaction) {
				input.OnChange(Snapshot{Collection: c, Transactions: records})
			}, input.OnError)
	case entity.CollectionBankAccounts:
		return Watch(ctx, uc.feed, input.Scope, c, uc.bankAccountRepo.FindAll,
			func(records []*entity.BankAccount) {
				input.OnChange(Snapshot{Collection: c, BankAccounts: records})
			}, input.OnError)
	case entity.CollectionBudgets:
		return Watch(ctx, uc.feed, input.Scope, c, uc.budgetRepo.FindAll,
			func(records []*entity.Budget) {
				input.OnChange(Snapshot{Collection: c, Budgets: records})
			}, input.OnError)
	case entity.CollectionSavingsGoals:
		return Watch(ctx, uc.feed, input.Scope, c, uc.savingsGoalRepo.FindAll,
			func(records []*entity.SavingsGoal) {
				input.OnChange(Snapshot{Collection: c, SavingsGoals: records})
			}, input.OnError)
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownCollection,
			"unknown collection",
			domainerror.ErrUnknownCollection,
		)
	}
}
