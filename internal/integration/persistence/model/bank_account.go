// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// BankAccountModel represents the bank_accounts table in the database.
type BankAccountModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ScopeColumns    `gorm:"embedded"`
	Name            string          `gorm:"type:varchar(100);not null"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Color           string          `gorm:"type:varchar(30);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BankAccountModel.
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToEntity converts a BankAccountModel to a domain BankAccount entity.
func (m *BankAccountModel) ToEntity() *entity.BankAccount {
	return &entity.BankAccount{
		ID:              m.ID,
		Scope:           m.ScopeColumns.ToScope(),
		Name:            m.Name,
		StartingBalance: m.StartingBalance,
		Color:           m.Color,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BankAccountFromEntity creates a BankAccountModel from a domain BankAccount entity.
func BankAccountFromEntity(account *entity.BankAccount) *BankAccountModel {
	return &BankAccountModel{
		ID:              account.ID,
		ScopeColumns:    ScopeColumnsFrom(account.Scope),
		Name:            account.Name,
		StartingBalance: account.StartingBalance,
		Color:           account.Color,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}
