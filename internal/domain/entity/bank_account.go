// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountColor is a display swatch for a bank account.
type AccountColor struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// AccountColors lists the swatches a bank account may use.
var AccountColors = []AccountColor{
	{Name: "Red", Class: "bg-red-500"},
	{Name: "Orange", Class: "bg-orange-500"},
	{Name: "Amber", Class: "bg-amber-500"},
	{Name: "Yellow", Class: "bg-yellow-500"},
	{Name: "Lime", Class: "bg-lime-500"},
	{Name: "Green", Class: "bg-green-500"},
	{Name: "Emerald", Class: "bg-emerald-500"},
	{Name: "Teal", Class: "bg-teal-500"},
	{Name: "Cyan", Class: "bg-cyan-500"},
	{Name: "Sky", Class: "bg-sky-500"},
	{Name: "Blue", Class: "bg-blue-500"},
	{Name: "Indigo", Class: "bg-indigo-500"},
	{Name: "Violet", Class: "bg-violet-500"},
	{Name: "Purple", Class: "bg-purple-500"},
	{Name: "Fuchsia", Class: "bg-fuchsia-500"},
	{Name: "Pink", Class: "bg-pink-500"},
	{Name: "Rose", Class: "bg-rose-500"},
	{Name: "Slate", Class: "bg-slate-500"},
}

// DefaultAccountColor is used when an account is created without a color.
var DefaultAccountColor = AccountColors[10]

// FindAccountColor looks up a swatch by its class.
func FindAccountColor(class string) (AccountColor, bool) {
	for _, c := range AccountColors {
		if c.Class == class {
			return c, true
		}
	}
	return AccountColor{}, false
}

// BankAccount is a user-defined account that transactions can be linked to.
// Its current balance is never stored.
type BankAccount struct {
	ID              uuid.UUID
	Scope           Scope
	Name            string
	StartingBalance decimal.Decimal
	Color           string // swatch class, e.g. "bg-blue-500"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBankAccount creates a new BankAccount entity.
func NewBankAccount(scope Scope, name string, startingBalance decimal.Decimal, color string) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		ID:              uuid.New(),
		Scope:           scope,
		Name:            name,
		StartingBalance: startingBalance,
		Color:           color,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
