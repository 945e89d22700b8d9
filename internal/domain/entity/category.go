// Package entity defines the core business entities for the domain layer.
package entity

// Classification is the direction of money for a transaction category.
type Classification string

const (
	ClassificationIncome  Classification = "income"
	ClassificationExpense Classification = "expense"
)

// DefaultIncomeCategory is preselected when recording income.
const DefaultIncomeCategory = "Salary"

// IncomeCategories is the fixed set of categories that mark a transaction as income.
var IncomeCategories = []string{"Salary", "Bonus", "Investment", "Freelance", "Other Income"}

// ExpenseCategories lists the categories offered for spending.
var ExpenseCategories = []string{
	"Groceries",
	"Utilities",
	"Rent/Mortgage",
	"Transportation",
	"Entertainment",
	"Healthcare",
	"Dining Out",
	"Education",
	"Shopping",
	"Travel",
	"Gifts",
	"Subscriptions",
	"Other",
}

// BudgetCategories lists the categories a budget can be set for.
var BudgetCategories = ExpenseCategories

var incomeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(IncomeCategories))
	for _, c := range IncomeCategories {
		set[c] = struct{}{}
	}
	return set
}()

// Classify returns Income when the category belongs to the income set and
// Expense for every other category, including unknown ones.
func Classify(category string) Classification {
	if _, ok := incomeSet[category]; ok {
		return ClassificationIncome
	}
	return ClassificationExpense
}
