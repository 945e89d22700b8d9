// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/report"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the dashboard and report endpoints.
type ReportController struct {
	dashboardUseCase         *report.GetDashboardSummaryUseCase
	monthlyTrendUseCase      *report.GetMonthlyTrendUseCase
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase
	budgetComparisonUseCase  *report.GetBudgetComparisonUseCase
	lifetimeSummaryUseCase   *report.GetLifetimeSummaryUseCase
	defaultCurrency          entity.Currency
	clock                    Clock
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardSummaryUseCase,
	monthlyTrendUseCase *report.GetMonthlyTrendUseCase,
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase,
	budgetComparisonUseCase *report.GetBudgetComparisonUseCase,
	lifetimeSummaryUseCase *report.GetLifetimeSummaryUseCase,
	defaultCurrency entity.Currency,
	clock Clock,
) *ReportController {
	return &ReportController{
		dashboardUseCase:         dashboardUseCase,
		monthlyTrendUseCase:      monthlyTrendUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
		budgetComparisonUseCase:  budgetComparisonUseCase,
		lifetimeSummaryUseCase:   lifetimeSummaryUseCase,
		defaultCurrency:          defaultCurrency,
		clock:                    clock,
	}
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardSummaryInput{
		Scope: scope,
		Now:   c.clock(),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output, currency))
}

// MonthlyTrend handles GET /reports/monthly-trend requests.
func (c *ReportController) MonthlyTrend(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	output, err := c.monthlyTrendUseCase.Execute(ctx.Request.Context(), report.GetMonthlyTrendInput{Scope: scope})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(output, currency))
}

// CategoryBreakdown handles GET /reports/category-breakdown requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), report.GetCategoryBreakdownInput{
		Scope: scope,
		Now:   c.clock(),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output, currency))
}

// BudgetComparison handles GET /reports/budget-comparison requests.
func (c *ReportController) BudgetComparison(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	output, err := c.budgetComparisonUseCase.Execute(ctx.Request.Context(), report.GetBudgetComparisonInput{
		Scope: scope,
		Now:   c.clock(),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetComparisonResponse(output, currency))
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	currency, ok := resolveCurrency(ctx, c.defaultCurrency)
	if !ok {
		return
	}

	output, err := c.lifetimeSummaryUseCase.Execute(ctx.Request.Context(), report.GetLifetimeSummaryInput{Scope: scope})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLifetimeSummaryResponse(output, currency))
}

// handleReportError handles report and export errors and returns appropriate HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	if handleStoreError(ctx, err) {
		return
	}
	internalError(ctx, string(domainerror.ErrCodeReportInternalError))
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownCollection,
		domainerror.ErrCodeUnsupportedCurrency,
		domainerror.ErrCodeUnsupportedExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
