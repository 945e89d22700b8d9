package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/feed"
	"github.com/finance-pal/backend/internal/integration/persistence"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

type fixture struct {
	repo   adapter.BudgetRepository
	create *CreateBudgetUseCase
	update *UpdateBudgetUseCase
	delete *DeleteBudgetUseCase
	list   *ListBudgetsUseCase
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

	repo := persistence.NewBudgetRepository(persistence.NewDBSelector(db, db))
	notifier := subscription.NewNotifier(feed.NewMemoryFeed())

	return &fixture{
		repo:   repo,
		create: NewCreateBudgetUseCase(repo, notifier),
		update: NewUpdateBudgetUseCase(repo, notifier),
		delete: NewDeleteBudgetUseCase(repo, notifier),
		list:   NewListBudgetsUseCase(repo),
	}
}

func assertCode(t *testing.T, err error, want domainerror.BudgetErrorCode) {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError with code %s, got %v", want, err)
	}
	if budgetErr.Code != want {
		t.Errorf("error code = %s, want %s", budgetErr.Code, want)
	}
}

func TestCreateBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	out, err := f.create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.Budget.SpentAmount.IsZero() {
		t.Errorf("SpentAmount = %s, want 0", out.Budget.SpentAmount)
	}

	tests := []struct {
		name  string
		input CreateBudgetInput
		want  domainerror.BudgetErrorCode
	}{
		{"duplicate category", CreateBudgetInput{Scope: scope, Category: "Groceries", AllocatedAmount: decimal.NewFromInt(10)}, domainerror.ErrCodeBudgetCategoryExists},
		{"missing category", CreateBudgetInput{Scope: scope, AllocatedAmount: decimal.NewFromInt(10)}, domainerror.ErrCodeMissingBudgetCategory},
		{"zero allocation", CreateBudgetInput{Scope: scope, Category: "Travel"}, domainerror.ErrCodeInvalidAllocatedAmount},
		{"sub-cent allocation", CreateBudgetInput{Scope: scope, Category: "Travel", AllocatedAmount: decimal.RequireFromString("99.999")}, domainerror.ErrCodeInvalidAllocatedAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.input)
			assertCode(t, err, tt.want)
		})
	}

	// The same category is free in another scope.
	if _, err := f.create.Execute(ctx, CreateBudgetInput{Scope: entity.UserScope(uuid.New()), Category: "Groceries", AllocatedAmount: decimal.NewFromInt(1)}); err != nil {
		t.Errorf("other scope create error = %v", err)
	}
}

func TestUpdateBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	food, _ := f.create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Groceries", AllocatedAmount: decimal.NewFromInt(400)})
	_, _ = f.create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Travel", AllocatedAmount: decimal.NewFromInt(900)})

	travel := "Travel"
	_, err := f.update.Execute(ctx, UpdateBudgetInput{Scope: scope, BudgetID: food.Budget.ID, Category: &travel})
	assertCode(t, err, domainerror.ErrCodeBudgetCategoryExists)

	same := "Groceries"
	amount := decimal.NewFromInt(450)
	out, err := f.update.Execute(ctx, UpdateBudgetInput{Scope: scope, BudgetID: food.Budget.ID, Category: &same, AllocatedAmount: &amount})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.Budget.AllocatedAmount.Equal(amount) {
		t.Errorf("AllocatedAmount = %s, want 450", out.Budget.AllocatedAmount)
	}

	_, err = f.update.Execute(ctx, UpdateBudgetInput{Scope: scope, BudgetID: uuid.New(), AllocatedAmount: &amount})
	assertCode(t, err, domainerror.ErrCodeBudgetNotFound)
}

func TestListBudgets_UsesStoredSpent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	over := entity.NewBudget(scope, "Dining Out", decimal.NewFromInt(100))
	over.SpentAmount = decimal.NewFromInt(150)
	half := entity.NewBudget(scope, "Groceries", decimal.NewFromInt(400))
	half.SpentAmount = decimal.NewFromInt(200)
	for _, b := range []*entity.Budget{over, half} {
		if err := f.repo.Create(ctx, b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := f.list.Execute(ctx, ListBudgetsInput{Scope: scope})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Budgets) != 2 {
		t.Fatalf("got %d budgets, want 2", len(out.Budgets))
	}

	tests := []struct {
		view       BudgetView
		percentage float64
		remaining  string
		over       bool
	}{
		{out.Budgets[0], 100, "-50", true},
		{out.Budgets[1], 50, "200", false},
	}
	for _, tt := range tests {
		t.Run(tt.view.Budget.Category, func(t *testing.T) {
			if tt.view.Percentage != tt.percentage {
				t.Errorf("Percentage = %v, want %v", tt.view.Percentage, tt.percentage)
			}
			if !tt.view.Remaining.Equal(decimal.RequireFromString(tt.remaining)) {
				t.Errorf("Remaining = %s, want %s", tt.view.Remaining, tt.remaining)
			}
			if tt.view.OverBudget != tt.over {
				t.Errorf("OverBudget = %v, want %v", tt.view.OverBudget, tt.over)
			}
		})
	}

	if err := f.delete.Execute(ctx, DeleteBudgetInput{Scope: scope, BudgetID: over.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = f.delete.Execute(ctx, DeleteBudgetInput{Scope: scope, BudgetID: over.ID})
	assertCode(t, err, domainerror.ErrCodeBudgetNotFound)
}

// staleExistsRepo answers ExistsByCategory from a snapshot taken before a
// concurrent writer claimed the category.
type staleExistsRepo struct {
	adapter.BudgetRepository
}

func (staleExistsRepo) ExistsByCategory(context.Context, entity.Scope, string, uuid.UUID) (bool, error) {
	return false, nil
}

func TestBudgetCategoryRace_StoreRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	repo := staleExistsRepo{BudgetRepository: f.repo}
	notifier := subscription.NewNotifier(feed.NewMemoryFeed())
	create := NewCreateBudgetUseCase(repo, notifier)
	update := NewUpdateBudgetUseCase(repo, notifier)

	if _, err := create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Groceries", AllocatedAmount: decimal.NewFromInt(300)}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	_, err := create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Groceries", AllocatedAmount: decimal.NewFromInt(5)})
	assertCode(t, err, domainerror.ErrCodeBudgetCategoryExists)

	rent, err := create.Execute(ctx, CreateBudgetInput{Scope: scope, Category: "Rent", AllocatedAmount: decimal.NewFromInt(1200)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	groceries := "Groceries"
	_, err = update.Execute(ctx, UpdateBudgetInput{Scope: scope, BudgetID: rent.Budget.ID, Category: &groceries})
	assertCode(t, err, domainerror.ErrCodeBudgetCategoryExists)

	all, err := f.repo.FindAll(ctx, scope)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("stored %d budgets, want 2", len(all))
	}
}
