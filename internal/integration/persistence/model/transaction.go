// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date and Time keep the text the client sent so that unparseable values
// survive a round trip.
type TransactionModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ScopeColumns        `gorm:"embedded"`
	Date                string          `gorm:"type:varchar(40);not null"`
	Time                string          `gorm:"type:varchar(16)"`
	Category            string          `gorm:"type:varchar(100);not null;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description         string          `gorm:"type:varchar(255)"`
	BankAccountID       *uuid.UUID      `gorm:"type:uuid;index"`
	IsRecurring         bool            `gorm:"default:false"`
	RecurrenceFrequency *string         `gorm:"type:varchar(10)"`
	RecurrenceEndDate   *string         `gorm:"type:varchar(40)"`
	CreatedAt           *time.Time      `gorm:"type:timestamp;autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var frequency *entity.RecurrenceFrequency
	if m.RecurrenceFrequency != nil {
		f := entity.RecurrenceFrequency(*m.RecurrenceFrequency)
		frequency = &f
	}

	return &entity.Transaction{
		ID:                  m.ID,
		Scope:               m.ScopeColumns.ToScope(),
		Date:                m.Date,
		Time:                m.Time,
		Category:            m.Category,
		Amount:              m.Amount,
		Description:         m.Description,
		BankAccountID:       m.BankAccountID,
		IsRecurring:         m.IsRecurring,
		RecurrenceFrequency: frequency,
		RecurrenceEndDate:   m.RecurrenceEndDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var frequency *string
	if transaction.RecurrenceFrequency != nil {
		f := string(*transaction.RecurrenceFrequency)
		frequency = &f
	}

	return &TransactionModel{
		ID:                  transaction.ID,
		ScopeColumns:        ScopeColumnsFrom(transaction.Scope),
		Date:                transaction.Date,
		Time:                transaction.Time,
		Category:            transaction.Category,
		Amount:              transaction.Amount,
		Description:         transaction.Description,
		BankAccountID:       transaction.BankAccountID,
		IsRecurring:         transaction.IsRecurring,
		RecurrenceFrequency: frequency,
		RecurrenceEndDate:   transaction.RecurrenceEndDate,
		CreatedAt:           transaction.CreatedAt,
		UpdatedAt:           transaction.UpdatedAt,
	}
}
