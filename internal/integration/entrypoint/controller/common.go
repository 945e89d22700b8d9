// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pal/backend/internal/integration/entrypoint/middleware"
)

// Clock returns the current instant. Reports and exports take it as their
// reference time.
type Clock func() time.Time

// requireScope reads the scope resolved by the scope middleware.
func requireScope(ctx *gin.Context) (entity.Scope, bool) {
	scope, ok := middleware.GetScopeFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Scope could not be resolved",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return entity.Scope{}, false
	}
	return scope, true
}

// parseIDParam parses the :id path parameter.
func parseIDParam(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleStoreError answers store outages with 503 and reports whether it did.
func handleStoreError(ctx *gin.Context, err error) bool {
	switch {
	case errors.Is(err, domainerror.ErrStoreUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Data store is unavailable",
			Code:  string(domainerror.ErrCodeStoreUnavailable),
		})
		return true
	case errors.Is(err, domainerror.ErrFeedUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Live updates are unavailable",
			Code:  string(domainerror.ErrCodeFeedUnavailable),
		})
		return true
	}
	return false
}

// internalError answers with a generic 500 carrying the domain's internal code.
func internalError(ctx *gin.Context, code string) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  code,
	})
}

// resolveCurrency reads the optional currency query parameter.
func resolveCurrency(ctx *gin.Context, fallback entity.Currency) (entity.Currency, bool) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Query("currency")))
	if code == "" {
		return fallback, true
	}
	currency, ok := entity.FindCurrency(code)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrUnsupportedCurrency.Error(),
			Code:  string(domainerror.ErrCodeUnsupportedCurrency),
		})
		return entity.Currency{}, false
	}
	return currency, true
}

// transactionQuery holds the filters shared by the transaction list and export.
type transactionQuery struct {
	Filters derived.Filters
	Limit   int
}

// parseTransactionQuery reads startDate, endDate, category, search, account and limit.
func parseTransactionQuery(ctx *gin.Context) (transactionQuery, bool) {
	var q transactionQuery

	parseDate := func(name string) (*civil.Date, bool) {
		raw := strings.TrimSpace(ctx.Query(name))
		if raw == "" {
			return nil, true
		}
		d, err := valueobject.ParseCalendarDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid " + name + " format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionFilter),
			})
			return nil, false
		}
		return &d, true
	}

	var ok bool
	if q.Filters.StartDate, ok = parseDate("startDate"); !ok {
		return q, false
	}
	if q.Filters.EndDate, ok = parseDate("endDate"); !ok {
		return q, false
	}
	if q.Filters.StartDate != nil && q.Filters.EndDate != nil && q.Filters.EndDate.Before(*q.Filters.StartDate) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "endDate must not be before startDate",
			Code:  string(domainerror.ErrCodeInvalidTransactionFilter),
		})
		return q, false
	}

	q.Filters.Category = strings.TrimSpace(ctx.Query("category"))
	q.Filters.Description = ctx.Query("search")

	account, err := derived.ParseAccountSelector(ctx.Query("account"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "account must be all, none or a bank account ID",
			Code:  string(domainerror.ErrCodeInvalidAccountSelector),
		})
		return q, false
	}
	q.Filters.Account = account

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
				Code:  string(domainerror.ErrCodeInvalidTransactionFilter),
			})
			return q, false
		}
		q.Limit = limit
	}

	return q, true
}
