package export

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	encoders "github.com/finance-pal/backend/internal/integration/export"
	"github.com/finance-pal/backend/internal/integration/persistence"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

var exportTime = time.Date(2024, time.July, 4, 9, 30, 0, 0, time.UTC)

func newUseCase(t *testing.T, scope entity.Scope) *ExportCollectionUseCase {
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

	ctx := context.Background()
	selector := persistence.NewDBSelector(db, db)
	transactions := persistence.NewTransactionRepository(selector)
	accounts := persistence.NewBankAccountRepository(selector)
	budgets := persistence.NewBudgetRepository(selector)
	goals := persistence.NewSavingsGoalRepository(selector)

	checking := entity.NewBankAccount(scope, "Checking", decimal.NewFromInt(100), "bg-blue-500")
	if err := accounts.Create(ctx, checking); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	weekly := entity.RecurrenceWeekly
	rent := entity.NewTransaction(scope, "2024-06-01", "09:00", "Rent/Mortgage", decimal.NewFromInt(900), "June rent", &checking.ID)
	rent.SetRecurrence(true, &weekly, nil)
	coffee := entity.NewTransaction(scope, "2024-06-20", "", "Dining Out", decimal.RequireFromString("4.5"), "Coffee, large", nil)
	for _, txn := range []*entity.Transaction{rent, coffee} {
		if err := transactions.Create(ctx, txn); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	if err := budgets.Create(ctx, entity.NewBudget(scope, "Groceries", decimal.NewFromInt(300))); err != nil {
		t.Fatalf("seed budget: %v", err)
	}
	if err := goals.Create(ctx, entity.NewSavingsGoal(scope, "Laptop", decimal.NewFromInt(1500), decimal.NewFromInt(200), nil)); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	return NewExportCollectionUseCase(
		transactions, accounts, budgets, goals,
		derived.NewEngine(nil),
		encoders.NewCSVEncoder(), encoders.NewXLSXEncoder(),
	)
}

func readCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV is not readable: %v", err)
	}
	return records
}

func TestExportCollection_TransactionsCSV(t *testing.T) {
	scope := entity.GuestScope()
	uc := newUseCase(t, scope)
	usd, _ := entity.FindCurrency("USD")

	out, err := uc.Execute(context.Background(), ExportCollectionInput{
		Scope:      scope,
		Collection: entity.CollectionTransactions,
		Format:     "CSV",
		Currency:   usd,
		Now:        exportTime,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.FileName != "transactions_2024-07-04.csv" {
		t.Errorf("FileName = %q", out.FileName)
	}
	if out.Rows != 2 {
		t.Errorf("Rows = %d, want 2", out.Rows)
	}

	records := readCSV(t, out.Content)
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if records[0][4] != "Amount (USD)" {
		t.Errorf("amount header = %q, want Amount (USD)", records[0][4])
	}

	// Newest first: coffee then rent.
	coffee, rent := records[1], records[2]
	if coffee[5] != "Coffee, large" || coffee[6] != "" || coffee[7] != "No" || coffee[8] != "" {
		t.Errorf("unexpected coffee row %v", coffee)
	}
	if coffee[4] != "4.50" {
		t.Errorf("coffee amount = %q, want 4.50", coffee[4])
	}
	if rent[6] != "Checking" || rent[7] != "Yes" || rent[8] != "weekly" || rent[9] != "" {
		t.Errorf("unexpected rent row %v", rent)
	}
}

func TestExportCollection_AppliesTransactionFilters(t *testing.T) {
	scope := entity.GuestScope()
	uc := newUseCase(t, scope)

	out, err := uc.Execute(context.Background(), ExportCollectionInput{
		Scope:      scope,
		Collection: entity.CollectionTransactions,
		Format:     "csv",
		Currency:   entity.DefaultCurrency,
		Filters:    derived.Filters{Account: derived.UnassignedAccount()},
		Now:        exportTime,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Rows != 1 {
		t.Errorf("Rows = %d, want only the unassigned transaction", out.Rows)
	}
}

func TestExportCollection_OtherCollections(t *testing.T) {
	scope := entity.GuestScope()
	uc := newUseCase(t, scope)

	tests := []struct {
		collection entity.Collection
		fileName   string
		header     string
	}{
		{entity.CollectionBudgets, "budgets_2024-07-04.csv", "Allocated Amount (INR)"},
		{entity.CollectionSavingsGoals, "savings-goals_2024-07-04.csv", "Target Amount (INR)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.collection), func(t *testing.T) {
			out, err := uc.Execute(context.Background(), ExportCollectionInput{
				Scope:      scope,
				Collection: tt.collection,
				Format:     "csv",
				Currency:   entity.DefaultCurrency,
				Now:        exportTime,
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out.FileName != tt.fileName {
				t.Errorf("FileName = %q, want %q", out.FileName, tt.fileName)
			}
			records := readCSV(t, out.Content)
			if len(records) != 2 || records[0][2] != tt.header {
				t.Errorf("unexpected records %v", records)
			}
		})
	}
}

func TestExportCollection_XLSX(t *testing.T) {
	scope := entity.GuestScope()
	uc := newUseCase(t, scope)

	out, err := uc.Execute(context.Background(), ExportCollectionInput{
		Scope:      scope,
		Collection: entity.CollectionBudgets,
		Format:     "xlsx",
		Currency:   entity.DefaultCurrency,
		Now:        exportTime,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.FileName != "budgets_2024-07-04.xlsx" {
		t.Errorf("FileName = %q", out.FileName)
	}
	// XLSX files are zip archives.
	if len(out.Content) < 2 || string(out.Content[:2]) != "PK" {
		t.Error("expected a zip payload")
	}
}

func TestExportCollection_Errors(t *testing.T) {
	scope := entity.GuestScope()
	uc := newUseCase(t, scope)

	tests := []struct {
		name  string
		input ExportCollectionInput
		want  domainerror.ReportErrorCode
	}{
		{"unsupported format", ExportCollectionInput{Scope: scope, Collection: entity.CollectionBudgets, Format: "pdf", Now: exportTime}, domainerror.ErrCodeUnsupportedExportFormat},
		{"bank accounts are not exportable", ExportCollectionInput{Scope: scope, Collection: entity.CollectionBankAccounts, Format: "csv", Now: exportTime}, domainerror.ErrCodeUnknownCollection},
		{"missing reference time", ExportCollectionInput{Scope: scope, Collection: entity.CollectionBudgets, Format: "csv"}, domainerror.ErrCodeMissingReferenceTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected ReportError, got %v", err)
			}
			if reportErr.Code != tt.want {
				t.Errorf("error code = %s, want %s", reportErr.Code, tt.want)
			}
		})
	}
}
