package savingsgoal

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

	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/feed"
	"github.com/finance-pal/backend/internal/integration/persistence"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

type fixture struct {
	create *CreateSavingsGoalUseCase
	update *UpdateSavingsGoalUseCase
	delete *DeleteSavingsGoalUseCase
	list   *ListSavingsGoalsUseCase
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

	repo := persistence.NewSavingsGoalRepository(persistence.NewDBSelector(db, db))
	notifier := subscription.NewNotifier(feed.NewMemoryFeed())

	return &fixture{
		create: NewCreateSavingsGoalUseCase(repo, notifier),
		update: NewUpdateSavingsGoalUseCase(repo, notifier),
		delete: NewDeleteSavingsGoalUseCase(repo, notifier),
		list:   NewListSavingsGoalsUseCase(repo),
	}
}

func assertCode(t *testing.T, err error, want domainerror.SavingsGoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.SavingsGoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected SavingsGoalError with code %s, got %v", want, err)
	}
	if goalErr.Code != want {
		t.Errorf("error code = %s, want %s", goalErr.Code, want)
	}
}

func TestCreateSavingsGoal_Validation(t *testing.T) {
	deadline := "2025-13-01"
	tests := []struct {
		name  string
		input CreateSavingsGoalInput
		want  domainerror.SavingsGoalErrorCode
	}{
		{"missing name", CreateSavingsGoalInput{TargetAmount: decimal.NewFromInt(10)}, domainerror.ErrCodeMissingGoalName},
		{"zero target", CreateSavingsGoalInput{Name: "Car"}, domainerror.ErrCodeInvalidTargetAmount},
		{"negative current", CreateSavingsGoalInput{Name: "Car", TargetAmount: decimal.NewFromInt(10), CurrentAmount: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidCurrentAmount},
		{"current above target", CreateSavingsGoalInput{Name: "Car", TargetAmount: decimal.NewFromInt(10), CurrentAmount: decimal.NewFromInt(11)}, domainerror.ErrCodeCurrentExceedsTarget},
		{"sub-cent target", CreateSavingsGoalInput{Name: "Car", TargetAmount: decimal.RequireFromString("10.001")}, domainerror.ErrCodeInvalidTargetAmount},
		{"sub-cent current", CreateSavingsGoalInput{Name: "Car", TargetAmount: decimal.NewFromInt(10), CurrentAmount: decimal.RequireFromString("1.234")}, domainerror.ErrCodeInvalidCurrentAmount},
		{"bad deadline", CreateSavingsGoalInput{Name: "Car", TargetAmount: decimal.NewFromInt(10), Deadline: &deadline}, domainerror.ErrCodeInvalidGoalDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.input.Scope = entity.GuestScope()
			_, err := f.create.Execute(context.Background(), tt.input)
			assertCode(t, err, tt.want)
		})
	}
}

func TestSavingsGoalLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	deadline := "2025-06-30"
	created, err := f.create.Execute(ctx, CreateSavingsGoalInput{
		Scope:         scope,
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(500),
		Deadline:      &deadline,
		AIHint:        "beach",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := f.list.Execute(ctx, ListSavingsGoalsInput{Scope: scope})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(out.Goals))
	}
	view := out.Goals[0]
	if view.Progress != 25 || !view.Remaining.Equal(decimal.NewFromInt(1500)) || view.Reached {
		t.Errorf("unexpected progress view %+v", view)
	}

	full := decimal.NewFromInt(2000)
	noDeadline := ""
	updated, err := f.update.Execute(ctx, UpdateSavingsGoalInput{Scope: scope, GoalID: created.Goal.ID, CurrentAmount: &full, Deadline: &noDeadline})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Goal.Deadline != nil {
		t.Errorf("Deadline = %v, want cleared", *updated.Goal.Deadline)
	}

	out, _ = f.list.Execute(ctx, ListSavingsGoalsInput{Scope: scope})
	if !out.Goals[0].Reached || out.Goals[0].Progress != 100 || !out.Goals[0].Remaining.IsZero() {
		t.Errorf("goal should be reached, got %+v", out.Goals[0])
	}

	tooMuch := decimal.NewFromInt(2001)
	_, err = f.update.Execute(ctx, UpdateSavingsGoalInput{Scope: scope, GoalID: created.Goal.ID, CurrentAmount: &tooMuch})
	assertCode(t, err, domainerror.ErrCodeCurrentExceedsTarget)

	if err := f.delete.Execute(ctx, DeleteSavingsGoalInput{Scope: scope, GoalID: created.Goal.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = f.delete.Execute(ctx, DeleteSavingsGoalInput{Scope: scope, GoalID: created.Goal.ID})
	assertCode(t, err, domainerror.ErrCodeSavingsGoalNotFound)
}

func TestListSavingsGoals_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scope := entity.GuestScope()

	for _, name := range []string{"First", "Second"} {
		if _, err := f.create.Execute(ctx, CreateSavingsGoalInput{Scope: scope, Name: name, TargetAmount: decimal.NewFromInt(100)}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	out, err := f.list.Execute(ctx, ListSavingsGoalsInput{Scope: scope})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Goals) != 2 || out.Goals[0].Goal.Name != "Second" {
		t.Errorf("expected newest goal first, got %v", out.Goals)
	}
}
