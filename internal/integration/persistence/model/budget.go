// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// A scope holds at most one budget per category.
type BudgetModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ScopeKind       string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_budgets_scope_category,priority:1"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_scope_category,priority:2"`
	Category        string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_scope_category,priority:3"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpentAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:              m.ID,
		Scope:           ScopeColumns{ScopeKind: m.ScopeKind, UserID: m.UserID}.ToScope(),
		Category:        m.Category,
		AllocatedAmount: m.AllocatedAmount,
		SpentAmount:     m.SpentAmount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	cols := ScopeColumnsFrom(budget.Scope)
	return &BudgetModel{
		ID:              budget.ID,
		ScopeKind:       cols.ScopeKind,
		UserID:          cols.UserID,
		Category:        budget.Category,
		AllocatedAmount: budget.AllocatedAmount,
		SpentAmount:     budget.SpentAmount,
		CreatedAt:       budget.CreatedAt,
		UpdatedAt:       budget.UpdatedAt,
	}
}
