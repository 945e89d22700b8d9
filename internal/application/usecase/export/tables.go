// Package export contains the collection export use case.
package export

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// TransactionsTable renders transactions in the given order. Accounts that no
// longer exist leave the account cell empty.
func TransactionsTable(txns []*entity.Transaction, accounts []*entity.BankAccount, currency entity.Currency) valueobject.Table {
	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}

	rows := make([][]string, len(txns))
	for i, txn := range txns {
		accountName := ""
		if txn.BankAccountID != nil {
			accountName = names[*txn.BankAccountID]
		}
		frequency := ""
		if txn.RecurrenceFrequency != nil {
			frequency = string(*txn.RecurrenceFrequency)
		}

		rows[i] = []string{
			txn.ID.String(),
			txn.Date,
			txn.Time,
			txn.Category,
			txn.Amount.StringFixed(2),
			txn.Description,
			accountName,
			yesNo(txn.IsRecurring),
			frequency,
			valueOrEmpty(txn.RecurrenceEndDate),
		}
	}

	return valueobject.Table{
		Name: string(entity.CollectionTransactions),
		Header: []string{
			"ID", "Date", "Time", "Category",
			fmt.Sprintf("Amount (%s)", currency.Code),
			"Description", "Bank Account Name", "Is Recurring",
			"Recurrence Frequency", "Recurrence End Date",
		},
		Rows: rows,
	}
}

// BudgetsTable renders budgets with their stored spent amount.
func BudgetsTable(budgets []*entity.Budget, currency entity.Currency) valueobject.Table {
	rows := make([][]string, len(budgets))
	for i, b := range budgets {
		rows[i] = []string{
			b.ID.String(),
			b.Category,
			b.AllocatedAmount.StringFixed(2),
			b.SpentAmount.StringFixed(2),
		}
	}

	return valueobject.Table{
		Name: string(entity.CollectionBudgets),
		Header: []string{
			"ID", "Category",
			fmt.Sprintf("Allocated Amount (%s)", currency.Code),
			fmt.Sprintf("Spent Amount (%s)", currency.Code),
		},
		Rows: rows,
	}
}

// SavingsGoalsTable renders savings goals.
func SavingsGoalsTable(goals []*entity.SavingsGoal, currency entity.Currency) valueobject.Table {
	rows := make([][]string, len(goals))
	for i, g := range goals {
		rows[i] = []string{
			g.ID.String(),
			g.Name,
			g.TargetAmount.StringFixed(2),
			g.CurrentAmount.StringFixed(2),
			valueOrEmpty(g.Deadline),
			g.ImageURL,
			g.AIHint,
		}
	}

	return valueobject.Table{
		Name: string(entity.CollectionSavingsGoals),
		Header: []string{
			"ID", "Name",
			fmt.Sprintf("Target Amount (%s)", currency.Code),
			fmt.Sprintf("Current Amount (%s)", currency.Code),
			"Deadline", "Image URL", "AI Hint",
		},
		Rows: rows,
	}
}
