// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/usecase/transaction"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date                string          `json:"date" binding:"required"`
	Time                string          `json:"time,omitempty"`
	Category            string          `json:"category" binding:"required"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description,omitempty" binding:"omitempty,max=255"`
	BankAccountID       *string         `json:"bank_account_id,omitempty"`
	IsRecurring         bool            `json:"is_recurring,omitempty"`
	RecurrenceFrequency *string         `json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate   *string         `json:"recurrence_end_date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date                *string          `json:"date,omitempty"`
	Time                *string          `json:"time,omitempty"`
	Category            *string          `json:"category,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Description         *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	BankAccountID       *string          `json:"bank_account_id,omitempty"`
	ClearBankAccount    bool             `json:"clear_bank_account,omitempty"`
	IsRecurring         *bool            `json:"is_recurring,omitempty"`
	RecurrenceFrequency *string          `json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate   *string          `json:"recurrence_end_date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                  string     `json:"id"`
	Date                string     `json:"date"`
	Time                string     `json:"time,omitempty"`
	Category            string     `json:"category"`
	Classification      string     `json:"classification"`
	Amount              string     `json:"amount"`
	Description         string     `json:"description"`
	BankAccountID       *string    `json:"bank_account_id,omitempty"`
	IsRecurring         bool       `json:"is_recurring"`
	RecurrenceFrequency *string    `json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate   *string    `json:"recurrence_end_date,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                txn.ID.String(),
		Date:              txn.Date,
		Time:              txn.Time,
		Category:          txn.Category,
		Classification:    string(txn.Classification()),
		Amount:            txn.Amount.StringFixed(2),
		Description:       txn.Description,
		IsRecurring:       txn.IsRecurring,
		RecurrenceEndDate: txn.RecurrenceEndDate,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}

	if txn.BankAccountID != nil {
		id := txn.BankAccountID.String()
		response.BankAccountID = &id
	}
	if txn.RecurrenceFrequency != nil {
		frequency := string(*txn.RecurrenceFrequency)
		response.RecurrenceFrequency = &frequency
	}

	return response
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Total:        output.Total,
	}
}
