// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/export"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// defaultExportFormat is used when the format query parameter is omitted.
const defaultExportFormat = "csv"

// ExportController handles file export endpoints.
type ExportController struct {
	exportUseCase   *export.ExportCollectionUseCase
	defaultCurrency entity.Currency
	clock           Clock
}

// NewExportController creates a new export controller instance.
func NewExportController(
	exportUseCase *export.ExportCollectionUseCase,
	defaultCurrency entity.Currency,
	clock Clock,
) *ExportController {
	return &ExportController{
		exportUseCase:   exportUseCase,
		defaultCurrency: defaultCurrency,
		clock:           clock,
	}
}

// Export handles GET /export/:collection requests. Transaction exports honour
// the same filters as the transaction list.
func (c *ExportController) Export(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	query, ok := parseTransactionQuery(ctx)
	if !ok {
		return
	}

	format := strings.TrimSpace(ctx.DefaultQuery("format", defaultExportFormat))

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportCollectionInput{
		Scope:      scope,
		Collection: entity.Collection(ctx.Param("collection")),
		Format:     format,
		Currency:   currency,
		Filters:    query.Filters,
		Now:        c.clock(),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	slog.Info("Collection exported",
		"scope", scope.Key(),
		"collection", ctx.Param("collection"),
		"format", format,
		"rows", output.Rows,
	)

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
