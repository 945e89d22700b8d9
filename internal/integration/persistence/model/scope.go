// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// ScopeColumns holds the ownership columns shared by every table.
type ScopeColumns struct {
	ScopeKind string    `gorm:"type:varchar(10);not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// ToScope converts the columns to a domain Scope.
func (c ScopeColumns) ToScope() entity.Scope {
	if entity.ScopeKind(c.ScopeKind) == entity.ScopeKindGuest {
		return entity.GuestScope()
	}
	return entity.UserScope(c.UserID)
}

// ScopeColumnsFrom creates the ownership columns for a domain Scope.
func ScopeColumnsFrom(scope entity.Scope) ScopeColumns {
	return ScopeColumns{
		ScopeKind: string(scope.Kind),
		UserID:    scope.UserID,
	}
}

// Models lists every model persisted per scope, for auto-migration.
func Models() []interface{} {
	return []interface{}{
		&TransactionModel{},
		&BankAccountModel{},
		&BudgetModel{},
		&SavingsGoalModel{},
	}
}
