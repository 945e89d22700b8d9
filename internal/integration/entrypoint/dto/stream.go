// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// SnapshotEvent is the payload of a "snapshot" server-sent event. Only the
// list matching Collection is set.
type SnapshotEvent struct {
	Collection   string                `json:"collection"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	BankAccounts []BankAccountResponse `json:"bank_accounts,omitempty"`
	Budgets      []BudgetResponse      `json:"budgets,omitempty"`
	SavingsGoals []SavingsGoalResponse `json:"savings_goals,omitempty"`
	Count        int                   `json:"count"`
}

// ToSnapshotEvent converts a collection snapshot to its event payload.
func ToSnapshotEvent(snapshot subscription.Snapshot) SnapshotEvent {
	event := SnapshotEvent{Collection: string(snapshot.Collection)}
	switch snapshot.Collection {
	case entity.CollectionTransactions:
		event.Transactions = ToTransactionResponses(snapshot.Transactions)
		event.Count = len(snapshot.Transactions)
	case entity.CollectionBankAccounts:
		event.BankAccounts = ToBankAccountResponses(snapshot.BankAccounts)
		event.Count = len(snapshot.BankAccounts)
	case entity.CollectionBudgets:
		event.Budgets = ToBudgetResponses(snapshot.Budgets)
		event.Count = len(snapshot.Budgets)
	case entity.CollectionSavingsGoals:
		event.SavingsGoals = ToSavingsGoalResponses(snapshot.SavingsGoals)
		event.Count = len(snapshot.SavingsGoals)
	}
	return event
}
