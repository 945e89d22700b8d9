// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-pal/backend/internal/domain/entity"

// ReferenceResponse lists the fixed reference data clients build forms from.
type ReferenceResponse struct {
	IncomeCategories      []string              `json:"income_categories"`
	DefaultIncomeCategory string                `json:"default_income_category"`
	ExpenseCategories     []string              `json:"expense_categories"`
	BudgetCategories      []string              `json:"budget_categories"`
	RecurrenceFrequencies []string              `json:"recurrence_frequencies"`
	AccountColors         []entity.AccountColor `json:"account_colors"`
	Currencies            []entity.Currency     `json:"currencies"`
	DefaultCurrency       string                `json:"default_currency"`
}

// NewReferenceResponse builds the reference payload with the configured default currency.
func NewReferenceResponse(defaultCurrency entity.Currency) ReferenceResponse {
	frequencies := make([]string, len(entity.RecurrenceFrequencies))
	for i, f := range entity.RecurrenceFrequencies {
		frequencies[i] = string(f)
	}

	return ReferenceResponse{
		IncomeCategories:      entity.IncomeCategories,
		DefaultIncomeCategory: entity.DefaultIncomeCategory,
		ExpenseCategories:     entity.ExpenseCategories,
		BudgetCategories:      entity.BudgetCategories,
		RecurrenceFrequencies: frequencies,
		AccountColors:         entity.AccountColors,
		Currencies:            entity.Currencies,
		DefaultCurrency:       defaultCurrency.Code,
	}
}
