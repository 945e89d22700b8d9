package derived

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// AccountSelectorKind restricts transactions by their bank account link.
type AccountSelectorKind string

const (
	AccountSelectorAll        AccountSelectorKind = "all"
	AccountSelectorUnassigned AccountSelectorKind = "none"
	AccountSelectorSpecific   AccountSelectorKind = "account"
)

// AccountSelector picks all transactions, only unlinked ones, or the ones of one account.
type AccountSelector struct {
	Kind      AccountSelectorKind
	AccountID uuid.UUID
}

// AllAccounts selects every transaction.
func AllAccounts() AccountSelector {
	return AccountSelector{Kind: AccountSelectorAll}
}

// UnassignedAccount selects transactions without a bank account.
func UnassignedAccount() AccountSelector {
	return AccountSelector{Kind: AccountSelectorUnassigned}
}

// SpecificAccount selects transactions linked to the given account.
func SpecificAccount(id uuid.UUID) AccountSelector {
	return AccountSelector{Kind: AccountSelectorSpecific, AccountID: id}
}

// ParseAccountSelector reads "", "all", "none" or an account id.
func ParseAccountSelector(value string) (AccountSelector, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(AccountSelectorAll):
		return AllAccounts(), nil
	case string(AccountSelectorUnassigned):
		return UnassignedAccount(), nil
	}
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return AccountSelector{}, domainerror.ErrInvalidAccountSelector
	}
	return SpecificAccount(id), nil
}

func (s AccountSelector) matches(txn *entity.Transaction) bool {
	switch s.Kind {
	case AccountSelectorUnassigned:
		return txn.BankAccountID == nil
	case AccountSelectorSpecific:
		return txn.BankAccountID != nil && *txn.BankAccountID == s.AccountID
	default:
		return true
	}
}

// Filters narrows a transaction list. Zero values mean "no restriction".
type Filters struct {
	StartDate   *civil.Date
	EndDate     *civil.Date
	Category    string
	Description string
	Account     AccountSelector
}

// FilterTransactions returns the transactions matching every filter, newest
// first. Date bounds are inclusive and compare calendar days only; a
// transaction whose date cannot be parsed never satisfies a date bound.
func (e *Engine) FilterTransactions(txns []*entity.Transaction, filters Filters) []*entity.Transaction {
	needle := strings.ToLower(filters.Description)
	bounded := filters.StartDate != nil || filters.EndDate != nil

	matched := make([]*entity.Transaction, 0, len(txns))
	for _, txn := range txns {
		if filters.Category != "" && txn.Category != filters.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(txn.Description), needle) {
			continue
		}
		if !filters.Account.matches(txn) {
			continue
		}
		if bounded {
			d, ok := e.calendarDate("filter_transactions", txn)
			if !ok {
				continue
			}
			if filters.StartDate != nil && d.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && d.After(*filters.EndDate) {
				continue
			}
		}
		matched = append(matched, txn)
	}

	return sortByRecency(matched)
}
