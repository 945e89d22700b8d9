package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/persistence"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

var june15 = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	transactions adapter.TransactionRepository
	budgets      adapter.BudgetRepository
	engine       *derived.Engine
	scope        entity.Scope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	selector := persistence.NewDBSelector(db, db)
	f := &fixture{
		transactions: persistence.NewTransactionRepository(selector),
		budgets:      persistence.NewBudgetRepository(selector),
		engine:       derived.NewEngine(nil),
		scope:        entity.UserScope(uuid.New()),
	}
	f.seed(t)
	return f
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	txns := []struct {
		date, category, amount string
	}{
		{"2024-06-01", "Salary", "3000"},
		{"2024-06-02", "Groceries", "200"},
		{"2024-06-10", "Groceries", "100"},
		{"2024-06-12", "Dining Out", "150"},
		{"2024-05-20", "Groceries", "80"},
		{"2024-04-03", "Utilities", "60"},
		{"2024-07-01", "Travel", "500"},
	}
	for _, tx := range txns {
		txn := entity.NewTransaction(f.scope, tx.date, "", tx.category, decimal.RequireFromString(tx.amount), "", nil)
		if err := f.transactions.Create(ctx, txn); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	for _, b := range []*entity.Budget{
		entity.NewBudget(f.scope, "Groceries", decimal.NewFromInt(250)),
		entity.NewBudget(f.scope, "Travel", decimal.NewFromInt(1000)),
	} {
		if err := f.budgets.Create(ctx, b); err != nil {
			t.Fatalf("seed budget: %v", err)
		}
	}
}

func assertReportCode(t *testing.T, err error, want domainerror.ReportErrorCode) {
	t.Helper()
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected ReportError with code %s, got %v", want, err)
	}
	if reportErr.Code != want {
		t.Errorf("error code = %s, want %s", reportErr.Code, want)
	}
}

func TestGetDashboardSummary(t *testing.T) {
	f := newFixture(t)
	uc := NewGetDashboardSummaryUseCase(f.transactions, f.engine)

	out, err := uc.Execute(context.Background(), GetDashboardSummaryInput{Scope: f.scope, Now: june15})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.Summary.TotalIncome.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("TotalIncome = %s, want 3000", out.Summary.TotalIncome)
	}
	if !out.Summary.TotalExpenses.Equal(decimal.NewFromInt(450)) {
		t.Errorf("TotalExpenses = %s, want 450", out.Summary.TotalExpenses)
	}
	if out.Summary.ExpenseTransactionCount != 3 {
		t.Errorf("ExpenseTransactionCount = %d, want 3", out.Summary.ExpenseTransactionCount)
	}
	if !out.NetBalance.Equal(decimal.NewFromInt(2550)) {
		t.Errorf("NetBalance = %s, want 2550", out.NetBalance)
	}
	if out.Period.Start.String() != "2024-06-01" || out.Period.End.String() != "2024-06-30" {
		t.Errorf("Period = %v..%v, want June 2024", out.Period.Start, out.Period.End)
	}
	if len(out.Summary.CategoryBreakdown) != 2 || out.Summary.CategoryBreakdown[0].Name != "Groceries" {
		t.Errorf("unexpected breakdown %+v", out.Summary.CategoryBreakdown)
	}
}

func TestGetLifetimeSummary(t *testing.T) {
	f := newFixture(t)
	uc := NewGetLifetimeSummaryUseCase(f.transactions, f.engine)

	out, err := uc.Execute(context.Background(), GetLifetimeSummaryInput{Scope: f.scope})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.Totals.TotalEarned.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("TotalEarned = %s, want 3000", out.Totals.TotalEarned)
	}
	if !out.Totals.TotalSpent.Equal(decimal.NewFromInt(1090)) {
		t.Errorf("TotalSpent = %s, want 1090", out.Totals.TotalSpent)
	}
	if out.Totals.TransactionCount != 7 {
		t.Errorf("TransactionCount = %d, want 7", out.Totals.TransactionCount)
	}
	if !out.Net.Equal(decimal.NewFromInt(1910)) {
		t.Errorf("Net = %s, want 1910", out.Net)
	}

	empty, err := uc.Execute(context.Background(), GetLifetimeSummaryInput{Scope: entity.UserScope(uuid.New())})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !empty.Totals.TotalEarned.IsZero() || !empty.Totals.TotalSpent.IsZero() {
		t.Errorf("empty scope totals = %+v, want zero", empty.Totals)
	}
}

func TestReports_RequireReferenceTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{"dashboard", func() error {
			_, err := NewGetDashboardSummaryUseCase(f.transactions, f.engine).Execute(ctx, GetDashboardSummaryInput{Scope: f.scope})
			return err
		}},
		{"breakdown", func() error {
			_, err := NewGetCategoryBreakdownUseCase(f.transactions, f.engine).Execute(ctx, GetCategoryBreakdownInput{Scope: f.scope})
			return err
		}},
		{"budget comparison", func() error {
			_, err := NewGetBudgetComparisonUseCase(f.transactions, f.budgets, f.engine).Execute(ctx, GetBudgetComparisonInput{Scope: f.scope})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertReportCode(t, tt.run(), domainerror.ErrCodeMissingReferenceTime)
		})
	}
}

func TestGetMonthlyTrend(t *testing.T) {
	f := newFixture(t)
	uc := NewGetMonthlyTrendUseCase(f.transactions, f.engine)

	out, err := uc.Execute(context.Background(), GetMonthlyTrendInput{Scope: f.scope})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []struct {
		label string
		total string
	}{
		{"Apr 2024", "60"},
		{"May 2024", "80"},
		{"Jun 2024", "450"},
		{"Jul 2024", "500"},
	}
	if len(out.Months) != len(want) {
		t.Fatalf("got %d months, want %d", len(out.Months), len(want))
	}
	for i, w := range want {
		if out.Months[i].Label != w.label || !out.Months[i].Total.Equal(decimal.RequireFromString(w.total)) {
			t.Errorf("month %d = %s %s, want %s %s", i, out.Months[i].Label, out.Months[i].Total, w.label, w.total)
		}
	}
}

func TestGetCategoryBreakdown(t *testing.T) {
	f := newFixture(t)
	uc := NewGetCategoryBreakdownUseCase(f.transactions, f.engine)

	out, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{Scope: f.scope, Now: june15})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.TotalExpenses.Equal(decimal.NewFromInt(450)) {
		t.Errorf("TotalExpenses = %s, want 450", out.TotalExpenses)
	}
	want := []CategoryShare{
		{Name: "Groceries", Value: decimal.NewFromInt(300), Percentage: 66.67},
		{Name: "Dining Out", Value: decimal.NewFromInt(150), Percentage: 33.33},
	}
	if len(out.Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(out.Categories), len(want))
	}
	for i, w := range want {
		got := out.Categories[i]
		if got.Name != w.Name || !got.Value.Equal(w.Value) || got.Percentage != w.Percentage {
			t.Errorf("category %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestGetCategoryBreakdown_EmptyMonth(t *testing.T) {
	f := newFixture(t)
	uc := NewGetCategoryBreakdownUseCase(f.transactions, f.engine)

	out, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{
		Scope: f.scope,
		Now:   time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Categories) != 0 || !out.TotalExpenses.IsZero() {
		t.Errorf("expected an empty breakdown, got %+v", out)
	}
}

func TestGetBudgetComparison(t *testing.T) {
	f := newFixture(t)
	uc := NewGetBudgetComparisonUseCase(f.transactions, f.budgets, f.engine)

	out, err := uc.Execute(context.Background(), GetBudgetComparisonInput{Scope: f.scope, Now: june15})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []struct {
		category   string
		spent      string
		remaining  string
		percentage float64
	}{
		{"Groceries", "300", "-50", 100},
		{"Travel", "0", "1000", 0},
	}
	if len(out.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(out.Rows), len(want))
	}
	for i, w := range want {
		row := out.Rows[i]
		t.Run(w.category, func(t *testing.T) {
			if row.Category != w.category {
				t.Errorf("Category = %s, want %s", row.Category, w.category)
			}
			if !row.Spent.Equal(decimal.RequireFromString(w.spent)) {
				t.Errorf("Spent = %s, want %s", row.Spent, w.spent)
			}
			if !row.Remaining.Equal(decimal.RequireFromString(w.remaining)) {
				t.Errorf("Remaining = %s, want %s", row.Remaining, w.remaining)
			}
			if row.Percentage != w.percentage {
				t.Errorf("Percentage = %v, want %v", row.Percentage, w.percentage)
			}
		})
	}
}
