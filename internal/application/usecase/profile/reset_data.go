// Package profile contains the use cases behind the profile page that span
// every collection of a scope.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// ResetDataInput represents the input for wiping a scope.
type ResetDataInput struct {
	Scope entity.Scope
}

// ResetDataOutput reports how many records each collection lost.
type ResetDataOutput struct {
	Deleted map[entity.Collection]int64
}

// ResetDataUseCase deletes every record of a scope. Other scopes sharing the
// store are untouched.
type ResetDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.SavingsGoalRepository
	accountRepo     adapter.BankAccountRepository
	notifier        *subscription.Notifier
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.SavingsGoalRepository,
	accountRepo adapter.BankAccountRepository,
	notifier *subscription.Notifier,
) *ResetDataUseCase {
	return &ResetDataUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
	}
}

// Execute clears the collections one after another, announcing each as soon
// as it is empty. A failure stops the reset; collections cleared before it
// stay cleared and are reported in the error.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) (*ResetDataOutput, error) {
	steps := []struct {
		collection entity.Collection
		deleteAll  func(context.Context, entity.Scope) (int64, error)
	}{
		{entity.CollectionTransactions, uc.transactionRepo.DeleteAll},
		{entity.CollectionBudgets, uc.budgetRepo.DeleteAll},
		{entity.CollectionSavingsGoals, uc.goalRepo.DeleteAll},
		{entity.CollectionBankAccounts, uc.accountRepo.DeleteAll},
	}

	output := &ResetDataOutput{Deleted: make(map[entity.Collection]int64, len(steps))}
	for _, step := range steps {
		n, err := step.deleteAll(ctx, input.Scope)
		if err != nil {
			return nil, fmt.Errorf("failed to reset %s after clearing %d collections: %w", step.collection, len(output.Deleted), err)
		}
		output.Deleted[step.collection] = n

		// A nil record ID tells subscribers the whole collection changed.
		uc.notifier.Notify(ctx, input.Scope, step.collection, adapter.ChangeActionDeleted, uuid.Nil)
	}

	return output, nil
}
