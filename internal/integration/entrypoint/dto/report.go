// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/usecase/report"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// MoneyResponse is an amount with its display string in the requested currency.
type MoneyResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// PeriodResponse represents the month a report covers.
type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ColoredCategoryResponse represents one slice of the dashboard breakdown.
type ColoredCategoryResponse struct {
	Name  string        `json:"name"`
	Value MoneyResponse `json:"value"`
	Fill  string        `json:"fill"`
}

// DashboardSummaryResponse represents the response for the dashboard summary.
type DashboardSummaryResponse struct {
	Period                  PeriodResponse            `json:"period"`
	Currency                string                    `json:"currency"`
	TotalIncome             MoneyResponse             `json:"total_income"`
	TotalExpenses           MoneyResponse             `json:"total_expenses"`
	NetBalance              MoneyResponse             `json:"net_balance"`
	ExpenseTransactionCount int                       `json:"expense_transaction_count"`
	CategoryBreakdown       []ColoredCategoryResponse `json:"category_breakdown"`
}

// MonthlyTotalResponse represents one month of the expense trend.
type MonthlyTotalResponse struct {
	Month string        `json:"month"`
	Label string        `json:"label"`
	Total MoneyResponse `json:"total"`
}

// MonthlyTrendResponse represents the response for the monthly expense trend.
type MonthlyTrendResponse struct {
	Currency string                 `json:"currency"`
	Months   []MonthlyTotalResponse `json:"months"`
}

// CategoryShareResponse represents one category of the breakdown.
type CategoryShareResponse struct {
	Name       string        `json:"name"`
	Value      MoneyResponse `json:"value"`
	Percentage float64       `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown.
type CategoryBreakdownResponse struct {
	Period        PeriodResponse          `json:"period"`
	Currency      string                  `json:"currency"`
	TotalExpenses MoneyResponse           `json:"total_expenses"`
	Categories    []CategoryShareResponse `json:"categories"`
}

// BudgetComparisonRowResponse represents one budget compared to actual spending.
type BudgetComparisonRowResponse struct {
	Category   string        `json:"category"`
	Allocated  MoneyResponse `json:"allocated"`
	Spent      MoneyResponse `json:"spent"`
	Remaining  MoneyResponse `json:"remaining"`
	Percentage float64       `json:"percentage"`
}

// BudgetComparisonResponse represents the response for the budget comparison.
type BudgetComparisonResponse struct {
	Period   PeriodResponse                `json:"period"`
	Currency string                        `json:"currency"`
	Rows     []BudgetComparisonRowResponse `json:"rows"`
}

// LifetimeSummaryResponse represents the all-time totals of a scope.
type LifetimeSummaryResponse struct {
	Currency         string        `json:"currency"`
	TotalEarned      MoneyResponse `json:"total_earned"`
	TotalSpent       MoneyResponse `json:"total_spent"`
	Net              MoneyResponse `json:"net"`
	TransactionCount int           `json:"transaction_count"`
}

func toMoney(amount decimal.Decimal, currency entity.Currency) MoneyResponse {
	return MoneyResponse{
		Amount:    amount.StringFixed(2),
		Formatted: currency.Format(amount),
	}
}

func toPeriod(interval valueobject.MonthInterval) PeriodResponse {
	return PeriodResponse{
		StartDate: interval.Start.String(),
		EndDate:   interval.End.String(),
	}
}

// ToDashboardSummaryResponse converts a GetDashboardSummaryOutput to its DTO.
func ToDashboardSummaryResponse(output *report.GetDashboardSummaryOutput, currency entity.Currency) DashboardSummaryResponse {
	breakdown := make([]ColoredCategoryResponse, len(output.Summary.CategoryBreakdown))
	for i, c := range output.Summary.CategoryBreakdown {
		breakdown[i] = ColoredCategoryResponse{
			Name:  c.Name,
			Value: toMoney(c.Value, currency),
			Fill:  c.Fill,
		}
	}

	return DashboardSummaryResponse{
		Period:                  toPeriod(output.Period),
		Currency:                currency.Code,
		TotalIncome:             toMoney(output.Summary.TotalIncome, currency),
		TotalExpenses:           toMoney(output.Summary.TotalExpenses, currency),
		NetBalance:              toMoney(output.NetBalance, currency),
		ExpenseTransactionCount: output.Summary.ExpenseTransactionCount,
		CategoryBreakdown:       breakdown,
	}
}

// ToMonthlyTrendResponse converts a GetMonthlyTrendOutput to its DTO.
func ToMonthlyTrendResponse(output *report.GetMonthlyTrendOutput, currency entity.Currency) MonthlyTrendResponse {
	months := make([]MonthlyTotalResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthlyTotalResponse{
			Month: string(m.Month),
			Label: m.Label,
			Total: toMoney(m.Total, currency),
		}
	}
	return MonthlyTrendResponse{Currency: currency.Code, Months: months}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to its DTO.
func ToCategoryBreakdownResponse(output *report.GetCategoryBreakdownOutput, currency entity.Currency) CategoryBreakdownResponse {
	categories := make([]CategoryShareResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryShareResponse{
			Name:       c.Name,
			Value:      toMoney(c.Value, currency),
			Percentage: c.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Period:        toPeriod(output.Period),
		Currency:      currency.Code,
		TotalExpenses: toMoney(output.TotalExpenses, currency),
		Categories:    categories,
	}
}

// ToBudgetComparisonResponse converts a GetBudgetComparisonOutput to its DTO.
func ToBudgetComparisonResponse(output *report.GetBudgetComparisonOutput, currency entity.Currency) BudgetComparisonResponse {
	rows := make([]BudgetComparisonRowResponse, len(output.Rows))
	for i, r := range output.Rows {
		rows[i] = BudgetComparisonRowResponse{
			Category:   r.Category,
			Allocated:  toMoney(r.Allocated, currency),
			Spent:      toMoney(r.Spent, currency),
			Remaining:  toMoney(r.Remaining, currency),
			Percentage: r.Percentage,
		}
	}
	return BudgetComparisonResponse{
		Period:   toPeriod(output.Period),
		Currency: currency.Code,
		Rows:     rows,
	}
}

// ToLifetimeSummaryResponse converts a GetLifetimeSummaryOutput to its DTO.
func ToLifetimeSummaryResponse(output *report.GetLifetimeSummaryOutput, currency entity.Currency) LifetimeSummaryResponse {
	return LifetimeSummaryResponse{
		Currency:         currency.Code,
		TotalEarned:      toMoney(output.Totals.TotalEarned, currency),
		TotalSpent:       toMoney(output.Totals.TotalSpent, currency),
		Net:              toMoney(output.Net, currency),
		TransactionCount: output.Totals.TransactionCount,
	}
}
