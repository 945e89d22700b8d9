// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/profile"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles endpoints acting on a scope as a whole.
type ProfileController struct {
	resetDataUseCase *profile.ResetDataUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(resetDataUseCase *profile.ResetDataUseCase) *ProfileController {
	return &ProfileController{
		resetDataUseCase: resetDataUseCase,
	}
}

// ResetData handles DELETE /data requests.
func (c *ProfileController) ResetData(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.resetDataUseCase.Execute(ctx.Request.Context(), profile.ResetDataInput{Scope: scope})
	if err != nil {
		if handleStoreError(ctx, err) {
			return
		}
		slog.Error("Failed to reset data", "scope", scope.Key(), "error", err)
		internalError(ctx, string(domainerror.ErrCodeResetFailed))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResetDataResponse(output))
}
