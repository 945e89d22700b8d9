package derived

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// AccountView is a bank account with its derived balance and linked history.
type AccountView struct {
	Account        *entity.BankAccount
	TotalDebits    decimal.Decimal
	CurrentBalance decimal.Decimal
	Transactions   []*entity.Transaction
}

// ComputeAccountBalances derives the current balance of every account.
//
// Every transaction linked to an account counts as a debit against it,
// income included, so CurrentBalance = StartingBalance - sum(linked amounts).
// Each view lists its transactions newest first. Views follow the account order.
func (e *Engine) ComputeAccountBalances(accounts []*entity.BankAccount, txns []*entity.Transaction) []AccountView {
	linked := make(map[uuid.UUID][]*entity.Transaction, len(accounts))
	for _, txn := range txns {
		if txn.BankAccountID == nil {
			continue
		}
		linked[*txn.BankAccountID] = append(linked[*txn.BankAccountID], txn)
	}

	views := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		own := linked[account.ID]

		debits := decimal.Zero
		for _, txn := range own {
			debits = debits.Add(txn.Amount)
		}

		views = append(views, AccountView{
			Account:        account,
			TotalDebits:    debits,
			CurrentBalance: account.StartingBalance.Sub(debits),
			Transactions:   sortByRecency(own),
		})
	}
	return views
}
