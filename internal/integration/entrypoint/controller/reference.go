// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// ReferenceController serves the fixed reference data.
type ReferenceController struct {
	defaultCurrency entity.Currency
}

// NewReferenceController creates a new reference controller instance.
func NewReferenceController(defaultCurrency entity.Currency) *ReferenceController {
	return &ReferenceController{defaultCurrency: defaultCurrency}
}

// Get handles GET /reference requests.
func (c *ReferenceController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewReferenceResponse(c.defaultCurrency))
}
