// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/bankaccount"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// BankAccountController handles bank account endpoints.
type BankAccountController struct {
	listUseCase   *bankaccount.ListBankAccountsUseCase
	createUseCase *bankaccount.CreateBankAccountUseCase
	updateUseCase *bankaccount.UpdateBankAccountUseCase
	deleteUseCase *bankaccount.DeleteBankAccountUseCase
}

// NewBankAccountController creates a new bank account controller instance.
func NewBankAccountController(
	listUseCase *bankaccount.ListBankAccountsUseCase,
	createUseCase *bankaccount.CreateBankAccountUseCase,
	updateUseCase *bankaccount.UpdateBankAccountUseCase,
	deleteUseCase *bankaccount.DeleteBankAccountUseCase,
) *BankAccountController {
	return &BankAccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /bank-accounts requests. Each account carries its derived balance.
func (c *BankAccountController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), bankaccount.ListBankAccountsInput{Scope: scope})
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountListResponse(output.Accounts))
}

// Create handles POST /bank-accounts requests.
func (c *BankAccountController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), bankaccount.CreateBankAccountInput{
		Scope:           scope,
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
		Color:           req.Color,
	})
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankAccountResponse(output.Account))
}

// Update handles PATCH /bank-accounts/:id requests.
func (c *BankAccountController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	accountID, ok := parseIDParam(ctx, "bank account")
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), bankaccount.UpdateBankAccountInput{
		Scope:           scope,
		AccountID:       accountID,
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
		Color:           req.Color,
	})
	if err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(output.Account))
}

// Delete handles DELETE /bank-accounts/:id requests. Linked transactions keep
// their reference and simply stop matching any account.
func (c *BankAccountController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	accountID, ok := parseIDParam(ctx, "bank account")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bankaccount.DeleteBankAccountInput{
		Scope:     scope,
		AccountID: accountID,
	}); err != nil {
		c.handleBankAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBankAccountError handles bank account errors and returns appropriate HTTP responses.
func (c *BankAccountController) handleBankAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.BankAccountError
	if errors.As(err, &accErr) {
		ctx.JSON(c.getStatusCodeForBankAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	if handleStoreError(ctx, err) {
		return
	}
	internalError(ctx, string(domainerror.ErrCodeBankAccountInternalError))
}

// getStatusCodeForBankAccountError maps bank account error codes to HTTP status codes.
func (c *BankAccountController) getStatusCodeForBankAccountError(code domainerror.BankAccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeBankAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingAccountName,
		domainerror.ErrCodeAccountNameTooLong,
		domainerror.ErrCodeNegativeStartingBalance,
		domainerror.ErrCodeInvalidAccountColor,
		domainerror.ErrCodeStartingBalanceTooPrecise:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
