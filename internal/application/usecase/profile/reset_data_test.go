package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	"github.com/finance-pal/backend/internal/integration/persistence"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

// recordingFeed keeps every published event.
type recordingFeed struct {
	mu     sync.Mutex
	events []adapter.ChangeEvent
}

func (f *recordingFeed) Publish(_ context.Context, event adapter.ChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *recordingFeed) Subscribe(context.Context, entity.Scope, entity.Collection, func(adapter.ChangeEvent)) (adapter.Unsubscribe, error) {
	return func() {}, nil
}

type fixture struct {
	transactions adapter.TransactionRepository
	accounts     adapter.BankAccountRepository
	budgets      adapter.BudgetRepository
	goals        adapter.SavingsGoalRepository
	feed         *recordingFeed
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
	return &fixture{
		transactions: persistence.NewTransactionRepository(selector),
		accounts:     persistence.NewBankAccountRepository(selector),
		budgets:      persistence.NewBudgetRepository(selector),
		goals:        persistence.NewSavingsGoalRepository(selector),
		feed:         &recordingFeed{},
	}
}

func (f *fixture) useCase(accounts adapter.BankAccountRepository) *ResetDataUseCase {
	return NewResetDataUseCase(f.transactions, f.budgets, f.goals, accounts, subscription.NewNotifier(f.feed))
}

func (f *fixture) seed(t *testing.T, scope entity.Scope) {
	t.Helper()
	ctx := context.Background()

	for _, amount := range []string{"12.50", "40", "3000"} {
		txn := entity.NewTransaction(scope, "2024-06-01", "", "Groceries", decimal.RequireFromString(amount), "", nil)
		if err := f.transactions.Create(ctx, txn); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	if err := f.accounts.Create(ctx, entity.NewBankAccount(scope, "Checking", decimal.NewFromInt(100), "")); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	for _, category := range []string{"Groceries", "Travel"} {
		if err := f.budgets.Create(ctx, entity.NewBudget(scope, category, decimal.NewFromInt(200))); err != nil {
			t.Fatalf("seed budget: %v", err)
		}
	}
	if err := f.goals.Create(ctx, entity.NewSavingsGoal(scope, "Trip", decimal.NewFromInt(1000), decimal.Zero, nil)); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
}

func (f *fixture) counts(t *testing.T, scope entity.Scope) [4]int {
	t.Helper()
	ctx := context.Background()

	txns, err := f.transactions.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll transactions: %v", err)
	}
	accounts, err := f.accounts.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll accounts: %v", err)
	}
	budgets, err := f.budgets.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll budgets: %v", err)
	}
	goals, err := f.goals.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll goals: %v", err)
	}
	return [4]int{len(txns), len(accounts), len(budgets), len(goals)}
}

func TestResetData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	guest := entity.GuestScope()
	user := entity.UserScope(uuid.New())
	f.seed(t, guest)
	f.seed(t, user)

	out, err := f.useCase(f.accounts).Execute(ctx, ResetDataInput{Scope: guest})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	wantDeleted := map[entity.Collection]int64{
		entity.CollectionTransactions: 3,
		entity.CollectionBudgets:      2,
		entity.CollectionSavingsGoals: 1,
		entity.CollectionBankAccounts: 1,
	}
	for collection, want := range wantDeleted {
		if got := out.Deleted[collection]; got != want {
			t.Errorf("Deleted[%s] = %d, want %d", collection, got, want)
		}
	}

	if got := f.counts(t, guest); got != [4]int{} {
		t.Errorf("guest counts after reset = %v, want all zero", got)
	}
	if got := f.counts(t, user); got != [4]int{3, 1, 2, 1} {
		t.Errorf("user counts after guest reset = %v, want untouched", got)
	}

	wantOrder := []entity.Collection{
		entity.CollectionTransactions,
		entity.CollectionBudgets,
		entity.CollectionSavingsGoals,
		entity.CollectionBankAccounts,
	}
	if len(f.feed.events) != len(wantOrder) {
		t.Fatalf("published %d events, want %d", len(f.feed.events), len(wantOrder))
	}
	for i, event := range f.feed.events {
		if event.Collection != wantOrder[i] {
			t.Errorf("event %d collection = %s, want %s", i, event.Collection, wantOrder[i])
		}
		if event.Action != adapter.ChangeActionDeleted || event.RecordID != uuid.Nil {
			t.Errorf("event %d = %+v, want a collection-wide delete", i, event)
		}
		if event.ScopeKey != guest.Key() {
			t.Errorf("event %d scope = %s, want %s", i, event.ScopeKey, guest.Key())
		}
	}

	// A second reset succeeds with nothing left to remove.
	again, err := f.useCase(f.accounts).Execute(ctx, ResetDataInput{Scope: guest})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	for collection, n := range again.Deleted {
		if n != 0 {
			t.Errorf("second reset Deleted[%s] = %d, want 0", collection, n)
		}
	}
}

var errDiskFull = errors.New("disk full")

type failingAccounts struct {
	adapter.BankAccountRepository
}

func (failingAccounts) DeleteAll(context.Context, entity.Scope) (int64, error) {
	return 0, errDiskFull
}

func TestResetData_StopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	scope := entity.UserScope(uuid.New())
	f.seed(t, scope)

	_, err := f.useCase(failingAccounts{f.accounts}).Execute(context.Background(), ResetDataInput{Scope: scope})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Execute() error = %v, want errDiskFull", err)
	}

	if got := f.counts(t, scope); got != [4]int{0, 1, 0, 0} {
		t.Errorf("counts after failed reset = %v, want only the account left", got)
	}
	if len(f.feed.events) != 3 {
		t.Errorf("published %d events, want 3 for the cleared collections", len(f.feed.events))
	}
	for _, event := range f.feed.events {
		if event.Collection == entity.CollectionBankAccounts {
			t.Error("announced bank accounts although they were not cleared")
		}
	}
}
