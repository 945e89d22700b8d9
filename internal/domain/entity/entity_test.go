package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category string
		want     Classification
	}{
		{"Salary", ClassificationIncome},
		{"Bonus", ClassificationIncome},
		{"Investment", ClassificationIncome},
		{"Freelance", ClassificationIncome},
		{"Other Income", ClassificationIncome},
		{"Groceries", ClassificationExpense},
		{"Other", ClassificationExpense},
		{"salary", ClassificationExpense},
		{"", ClassificationExpense},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := Classify(tt.category); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.category, got, tt.want)
			}
		})
	}
}

func TestScope(t *testing.T) {
	guest := GuestScope()
	if !guest.IsGuest() || guest.Key() != "guest" {
		t.Errorf("unexpected guest scope %+v (%s)", guest, guest.Key())
	}

	id := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	user := UserScope(id)
	if user.IsGuest() {
		t.Error("expected user scope not to be guest")
	}
	if user.Key() != "user:7c9e6679-7425-40de-944b-e07fc1f90ae7" {
		t.Errorf("unexpected key %s", user.Key())
	}
}

func TestCollection_IsValid(t *testing.T) {
	for _, c := range Collections {
		if !c.IsValid() {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if Collection("users").IsValid() {
		t.Error("expected unknown collection to be invalid")
	}
}

func TestTransaction_SetRecurrence(t *testing.T) {
	monthly := RecurrenceMonthly
	end := "2025-01-01"
	txn := NewTransaction(GuestScope(), "2024-06-01", "", "Rent/Mortgage", decimal.NewFromInt(900), "", nil)

	txn.SetRecurrence(true, &monthly, &end)
	if !txn.IsRecurring || *txn.RecurrenceFrequency != RecurrenceMonthly || *txn.RecurrenceEndDate != end {
		t.Errorf("unexpected recurrence %+v", txn)
	}

	txn.SetRecurrence(false, &monthly, &end)
	if txn.IsRecurring || txn.RecurrenceFrequency != nil || txn.RecurrenceEndDate != nil {
		t.Errorf("expected recurrence to be cleared, got %+v", txn)
	}
}

func TestCurrency_Format(t *testing.T) {
	inr, ok := FindCurrency("INR")
	if !ok || inr != DefaultCurrency {
		t.Fatalf("expected INR to be the default currency")
	}
	if got := inr.Format(decimal.RequireFromString("1234.5")); got != "₹1234.50" {
		t.Errorf("unexpected format %s", got)
	}
	usd, _ := FindCurrency("USD")
	if got := usd.Format(decimal.RequireFromString("0.125")); got != "$0.13" {
		t.Errorf("unexpected format %s", got)
	}
	if _, ok := FindCurrency("BTC"); ok {
		t.Error("expected BTC to be unsupported")
	}
}

func TestBudgetAndGoalHelpers(t *testing.T) {
	budget := NewBudget(GuestScope(), "Groceries", decimal.NewFromInt(100))
	budget.SpentAmount = decimal.NewFromInt(130)
	if !budget.IsOverBudget() || !budget.Remaining().Equal(decimal.NewFromInt(-30)) {
		t.Errorf("unexpected budget state %+v", budget)
	}

	goal := NewSavingsGoal(GuestScope(), "Bike", decimal.NewFromInt(500), decimal.NewFromInt(120), nil)
	if !goal.Remaining().Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected 380 remaining, got %s", goal.Remaining())
	}

	if _, ok := FindAccountColor("bg-teal-500"); !ok {
		t.Error("expected teal swatch to exist")
	}
	if len(AccountColors) != 18 {
		t.Errorf("expected 18 swatches, got %d", len(AccountColors))
	}
}
