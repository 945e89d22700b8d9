// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/usecase/budget"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category        string          `json:"category" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category        *string          `json:"category,omitempty"`
	AllocatedAmount *decimal.Decimal `json:"allocated_amount,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID              string    `json:"id"`
	Category        string    `json:"category"`
	AllocatedAmount string    `json:"allocated_amount"`
	SpentAmount     string    `json:"spent_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetViewResponse is a budget with its progress figures.
type BudgetViewResponse struct {
	BudgetResponse
	Percentage float64 `json:"percentage"`
	Remaining  string  `json:"remaining"`
	OverBudget bool    `json:"over_budget"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetViewResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID.String(),
		Category:        b.Category,
		AllocatedAmount: b.AllocatedAmount.StringFixed(2),
		SpentAmount:     b.SpentAmount.StringFixed(2),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToBudgetResponses converts a slice of budgets.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}

// ToBudgetListResponse converts a ListBudgetsOutput to BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetViewResponse, len(output.Budgets))
	for i, view := range output.Budgets {
		budgets[i] = BudgetViewResponse{
			BudgetResponse: ToBudgetResponse(view.Budget),
			Percentage:     view.Percentage,
			Remaining:      view.Remaining.StringFixed(2),
			OverBudget:     view.OverBudget,
		}
	}
	return BudgetListResponse{Budgets: budgets}
}
