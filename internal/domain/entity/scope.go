// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// ScopeKind identifies which backing store owns a scope's data.
type ScopeKind string

const (
	ScopeKindUser  ScopeKind = "user"
	ScopeKindGuest ScopeKind = "guest"
)

// Scope is the ownership context of every record: an authenticated user or
// the single device-local guest scope.
type Scope struct {
	Kind   ScopeKind
	UserID uuid.UUID
}

// UserScope returns the scope of an authenticated user.
func UserScope(userID uuid.UUID) Scope {
	return Scope{Kind: ScopeKindUser, UserID: userID}
}

// GuestScope returns the implicit device-local scope.
func GuestScope() Scope {
	return Scope{Kind: ScopeKindGuest, UserID: uuid.Nil}
}

// IsGuest reports whether the scope is the device-local guest scope.
func (s Scope) IsGuest() bool {
	return s.Kind == ScopeKindGuest
}

// Key returns a stable string form used for feed channels and logs.
func (s Scope) Key() string {
	if s.IsGuest() {
		return string(ScopeKindGuest)
	}
	return string(ScopeKindUser) + ":" + s.UserID.String()
}

// Collection names one of the four record collections kept per scope.
type Collection string

const (
	CollectionTransactions Collection = "transactions"
	CollectionBankAccounts Collection = "bank-accounts"
	CollectionBudgets      Collection = "budgets"
	CollectionSavingsGoals Collection = "savings-goals"
)

// Collections lists every collection in display order.
var Collections = []Collection{
	CollectionTransactions,
	CollectionBankAccounts,
	CollectionBudgets,
	CollectionSavingsGoals,
}

// IsValid reports whether the collection is one of the known collections.
func (c Collection) IsValid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}
