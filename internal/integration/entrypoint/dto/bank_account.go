// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateBankAccountRequest represents the request body for bank account creation.
type CreateBankAccountRequest struct {
	Name            string          `json:"name" binding:"required,max=100"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	Color           string          `json:"color,omitempty"`
}

// UpdateBankAccountRequest represents the request body for bank account update.
type UpdateBankAccountRequest struct {
	Name            *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	StartingBalance *decimal.Decimal `json:"starting_balance,omitempty"`
	Color           *string          `json:"color,omitempty"`
}

// BankAccountResponse represents a single bank account in API responses.
type BankAccountResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	StartingBalance string    `json:"starting_balance"`
	Color           string    `json:"color"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BankAccountViewResponse is a bank account with its derived balance.
type BankAccountViewResponse struct {
	BankAccountResponse
	TotalDebits    string                `json:"total_debits"`
	CurrentBalance string                `json:"current_balance"`
	Transactions   []TransactionResponse `json:"transactions"`
}

// BankAccountListResponse represents the response for listing bank accounts.
type BankAccountListResponse struct {
	Accounts []BankAccountViewResponse `json:"accounts"`
}

// ToBankAccountResponse converts a domain BankAccount entity to a BankAccountResponse DTO.
func ToBankAccountResponse(account *entity.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		StartingBalance: account.StartingBalance.StringFixed(2),
		Color:           account.Color,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}

// ToBankAccountResponses converts a slice of bank accounts.
func ToBankAccountResponses(accounts []*entity.BankAccount) []BankAccountResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToBankAccountResponse(account)
	}
	return responses
}

// ToBankAccountListResponse converts derived account views to the list response.
func ToBankAccountListResponse(views []derived.AccountView) BankAccountListResponse {
	accounts := make([]BankAccountViewResponse, len(views))
	for i, view := range views {
		accounts[i] = BankAccountViewResponse{
			BankAccountResponse: ToBankAccountResponse(view.Account),
			TotalDebits:         view.TotalDebits.StringFixed(2),
			CurrentBalance:      view.CurrentBalance.StringFixed(2),
			Transactions:        ToTransactionResponses(view.Transactions),
		}
	}
	return BankAccountListResponse{Accounts: accounts}
}
