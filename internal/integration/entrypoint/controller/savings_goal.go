// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/savingsgoal"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	listUseCase   *savingsgoal.ListSavingsGoalsUseCase
	createUseCase *savingsgoal.CreateSavingsGoalUseCase
	updateUseCase *savingsgoal.UpdateSavingsGoalUseCase
	deleteUseCase *savingsgoal.DeleteSavingsGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	listUseCase *savingsgoal.ListSavingsGoalsUseCase,
	createUseCase *savingsgoal.CreateSavingsGoalUseCase,
	updateUseCase *savingsgoal.UpdateSavingsGoalUseCase,
	deleteUseCase *savingsgoal.DeleteSavingsGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings-goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savingsgoal.ListSavingsGoalsInput{Scope: scope})
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(output))
}

// Create handles POST /savings-goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savingsgoal.CreateSavingsGoalInput{
		Scope:         scope,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		ImageURL:      req.ImageURL,
		AIHint:        req.AIHint,
	})
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// Update handles PATCH /savings-goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	goalID, ok := parseIDParam(ctx, "savings goal")
	if !ok {
		return
	}

	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), savingsgoal.UpdateSavingsGoalInput{
		Scope:         scope,
		GoalID:        goalID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		ImageURL:      req.ImageURL,
		AIHint:        req.AIHint,
	})
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /savings-goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	goalID, ok := parseIDParam(ctx, "savings goal")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), savingsgoal.DeleteSavingsGoalInput{
		Scope:  scope,
		GoalID: goalID,
	}); err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSavingsGoalError handles savings goal errors and returns appropriate HTTP responses.
func (c *SavingsGoalController) handleSavingsGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.SavingsGoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForSavingsGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	if handleStoreError(ctx, err) {
		return
	}
	internalError(ctx, string(domainerror.ErrCodeSavingsGoalInternalError))
}

// getStatusCodeForSavingsGoalError maps savings goal error codes to HTTP status codes.
func (c *SavingsGoalController) getStatusCodeForSavingsGoalError(code domainerror.SavingsGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingsGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingGoalName,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidCurrentAmount,
		domainerror.ErrCodeCurrentExceedsTarget,
		domainerror.ErrCodeInvalidGoalDeadline:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
