// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/usecase/savingsgoal"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for savings goal creation.
type CreateSavingsGoalRequest struct {
	Name          string          `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *string         `json:"deadline,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	AIHint        string          `json:"ai_hint,omitempty"`
}

// UpdateSavingsGoalRequest represents the request body for savings goal update.
// An empty deadline clears it.
type UpdateSavingsGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	AIHint        *string          `json:"ai_hint,omitempty"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	AIHint        string    `json:"ai_hint,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingsGoalViewResponse is a savings goal with its progress.
type SavingsGoalViewResponse struct {
	SavingsGoalResponse
	Progress  float64 `json:"progress"`
	Remaining string  `json:"remaining"`
	Reached   bool    `json:"reached"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalViewResponse `json:"goals"`
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(g *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		Deadline:      g.Deadline,
		ImageURL:      g.ImageURL,
		AIHint:        g.AIHint,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToSavingsGoalResponses converts a slice of savings goals.
func ToSavingsGoalResponses(goals []*entity.SavingsGoal) []SavingsGoalResponse {
	responses := make([]SavingsGoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToSavingsGoalResponse(g)
	}
	return responses
}

// ToSavingsGoalListResponse converts a ListSavingsGoalsOutput to SavingsGoalListResponse DTO.
func ToSavingsGoalListResponse(output *savingsgoal.ListSavingsGoalsOutput) SavingsGoalListResponse {
	goals := make([]SavingsGoalViewResponse, len(output.Goals))
	for i, view := range output.Goals {
		goals[i] = SavingsGoalViewResponse{
			SavingsGoalResponse: ToSavingsGoalResponse(view.Goal),
			Progress:            view.Progress,
			Remaining:           view.Remaining.StringFixed(2),
			Reached:             view.Reached,
		}
	}
	return SavingsGoalListResponse{Goals: goals}
}
