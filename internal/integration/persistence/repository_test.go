package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestDBSelector_For(t *testing.T) {
	local := openTestDB(t)
	remote := openTestDB(t)
	user := entity.UserScope(uuid.New())

	tests := []struct {
		name     string
		selector *DBSelector
		scope    entity.Scope
		wantErr  error
	}{
		{"guest uses local store", NewDBSelector(remote, local), entity.GuestScope(), nil},
		{"user uses remote store", NewDBSelector(remote, local), user, nil},
		{"guest without local store", NewDBSelector(remote, nil), entity.GuestScope(), domainerror.ErrStoreUnavailable},
		{"user without remote store", NewDBSelector(nil, local), user, domainerror.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := tt.selector.For(context.Background(), tt.scope)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("For() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && db == nil {
				t.Error("For() returned nil db")
			}
		})
	}
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewDBSelector(nil, openTestDB(t)))
	scope := entity.GuestScope()

	accountID := uuid.New()
	txn := entity.NewTransaction(scope, "2024-06-05", "09:30", "Groceries", decimal.RequireFromString("42.50"), "Weekly shop", &accountID)
	freq := entity.RecurrenceWeekly
	end := "2024-12-31"
	txn.SetRecurrence(true, &freq, &end)

	if err := repo.Create(ctx, txn); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, scope, txn.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Date != "2024-06-05" || got.Time != "09:30" {
		t.Errorf("date/time = %q %q, want 2024-06-05 09:30", got.Date, got.Time)
	}
	if !got.Amount.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("Amount = %s, want 42.50", got.Amount)
	}
	if got.BankAccountID == nil || *got.BankAccountID != accountID {
		t.Errorf("BankAccountID = %v, want %s", got.BankAccountID, accountID)
	}
	if !got.IsRecurring || got.RecurrenceFrequency == nil || *got.RecurrenceFrequency != entity.RecurrenceWeekly {
		t.Errorf("recurrence not preserved: %+v", got)
	}
	if !got.Scope.IsGuest() {
		t.Errorf("Scope = %+v, want guest", got.Scope)
	}
	if got.CreatedAt == nil {
		t.Error("CreatedAt should be preserved")
	}

	got.Category = "Salary"
	got.BankAccountID = nil
	got.SetRecurrence(false, nil, nil)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := repo.FindByID(ctx, scope, txn.ID)
	if err != nil {
		t.Fatalf("FindByID() after update error = %v", err)
	}
	if updated.Category != "Salary" || updated.BankAccountID != nil || updated.IsRecurring {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := repo.Delete(ctx, scope, txn.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, scope, txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrTransactionNotFound", err)
	}
	if err := repo.Delete(ctx, scope, txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("second Delete() error = %v, want ErrTransactionNotFound", err)
	}
}

func TestTransactionRepository_ScopeIsolation(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewTransactionRepository(NewDBSelector(db, db))

	alice := entity.UserScope(uuid.New())
	bob := entity.UserScope(uuid.New())

	for _, scope := range []entity.Scope{alice, alice, bob, entity.GuestScope()} {
		txn := entity.NewTransaction(scope, "2024-06-01", "", "Food", decimal.NewFromInt(10), "", nil)
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		name  string
		scope entity.Scope
		want  int
	}{
		{"alice", alice, 2},
		{"bob", bob, 1},
		{"guest", entity.GuestScope(), 1},
		{"stranger", entity.UserScope(uuid.New()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindAll(ctx, tt.scope)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("FindAll() returned %d, want %d", len(got), tt.want)
			}
		})
	}

	all, _ := repo.FindAll(ctx, alice)
	if _, err := repo.FindByID(ctx, bob, all[0].ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("cross-scope FindByID() error = %v, want ErrTransactionNotFound", err)
	}
	foreign := *all[0]
	foreign.Scope = bob
	if err := repo.Update(ctx, &foreign); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("cross-scope Update() error = %v, want ErrTransactionNotFound", err)
	}
}

func TestTransactionRepository_MissingCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewDBSelector(nil, openTestDB(t)))
	scope := entity.GuestScope()

	txn := entity.NewTransaction(scope, "2024-06-01", "", "Food", decimal.NewFromInt(5), "", nil)
	txn.CreatedAt = nil
	if err := repo.Create(ctx, txn); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, scope, txn.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.CreatedAt != nil {
		t.Errorf("CreatedAt = %v, want nil", got.CreatedAt)
	}
}

func TestBankAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBankAccountRepository(NewDBSelector(nil, openTestDB(t)))
	scope := entity.GuestScope()

	savings := entity.NewBankAccount(scope, "Savings", decimal.NewFromInt(5000), "bg-green-500")
	checking := entity.NewBankAccount(scope, "Checking", decimal.NewFromInt(1000), "bg-blue-500")
	for _, account := range []*entity.BankAccount{savings, checking} {
		if err := repo.Create(ctx, account); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	accounts, err := repo.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(accounts) != 2 || accounts[0].Name != "Checking" || accounts[1].Name != "Savings" {
		t.Errorf("FindAll() should order by name, got %v", accounts)
	}

	savings.StartingBalance = decimal.Zero
	if err := repo.Update(ctx, savings); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := repo.FindByID(ctx, scope, savings.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !got.StartingBalance.IsZero() {
		t.Errorf("StartingBalance = %s, want 0", got.StartingBalance)
	}

	if err := repo.Delete(ctx, scope, checking.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, scope, checking.ID); !errors.Is(err, domainerror.ErrBankAccountNotFound) {
		t.Errorf("FindByID() error = %v, want ErrBankAccountNotFound", err)
	}
}

func TestBudgetRepository_ExistsByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(NewDBSelector(nil, openTestDB(t)))
	scope := entity.GuestScope()

	food := entity.NewBudget(scope, "Food", decimal.NewFromInt(500))
	if err := repo.Create(ctx, food); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name      string
		category  string
		excludeID uuid.UUID
		want      bool
	}{
		{"same category", "Food", uuid.Nil, true},
		{"same category excluding itself", "Food", food.ID, false},
		{"other category", "Transport", uuid.Nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsByCategory(ctx, scope, tt.category, tt.excludeID)
			if err != nil {
				t.Fatalf("ExistsByCategory() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExistsByCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetRepository_OneBudgetPerCategory(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewBudgetRepository(NewDBSelector(db, db))
	guest := entity.GuestScope()
	user := entity.UserScope(uuid.New())

	if err := repo.Create(ctx, entity.NewBudget(guest, "Groceries", decimal.NewFromInt(300))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(ctx, entity.NewBudget(guest, "Groceries", decimal.NewFromInt(5)))
	if !errors.Is(err, domainerror.ErrBudgetCategoryExists) {
		t.Fatalf("Create() duplicate error = %v, want ErrBudgetCategoryExists", err)
	}

	if err := repo.Create(ctx, entity.NewBudget(user, "Groceries", decimal.NewFromInt(5))); err != nil {
		t.Fatalf("Create() in another scope error = %v", err)
	}

	rent := entity.NewBudget(guest, "Rent", decimal.NewFromInt(1200))
	if err := repo.Create(ctx, rent); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	rent.Category = "Groceries"
	if err := repo.Update(ctx, rent); !errors.Is(err, domainerror.ErrBudgetCategoryExists) {
		t.Fatalf("Update() into taken category error = %v, want ErrBudgetCategoryExists", err)
	}

	budgets, err := repo.FindAll(ctx, guest)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(budgets) != 2 {
		t.Fatalf("FindAll() returned %d budgets, want 2", len(budgets))
	}
	for _, b := range budgets {
		if b.ID == rent.ID && b.Category != "Rent" {
			t.Errorf("rejected update changed category to %q", b.Category)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated", gorm.ErrDuplicatedKey, true},
		{"wrapped translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: budgets.scope_kind, budgets.user_id, budgets.category (2067)"), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "idx_budgets_scope_category" (SQLSTATE 23505)`), true},
		{"other", errors.New("database is locked"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSavingsGoalRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSavingsGoalRepository(NewDBSelector(nil, openTestDB(t)))
	scope := entity.GuestScope()

	older := entity.NewSavingsGoal(scope, "Laptop", decimal.NewFromInt(1500), decimal.Zero, nil)
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := "2025-06-01"
	newer := entity.NewSavingsGoal(scope, "Trip", decimal.NewFromInt(3000), decimal.NewFromInt(200), &deadline)
	newer.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, goal := range []*entity.SavingsGoal{older, newer} {
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	goals, err := repo.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(goals) != 2 || goals[0].Name != "Trip" {
		t.Fatalf("FindAll() should return newest first, got %v", goals)
	}
	if goals[0].Deadline == nil || *goals[0].Deadline != "2025-06-01" {
		t.Errorf("Deadline = %v, want 2025-06-01", goals[0].Deadline)
	}
}
