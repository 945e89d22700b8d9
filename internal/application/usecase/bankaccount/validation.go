// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// MaxNameLength is the maximum allowed length for an account name.
const MaxNameLength = 100

func validateAccount(account *entity.BankAccount) error {
	if strings.TrimSpace(account.Name) == "" {
		return domainerror.NewBankAccountError(
			domainerror.ErrCodeMissingAccountName,
			"account name is required",
			domainerror.ErrMissingAccountName,
		)
	}
	if utf8.RuneCountInString(account.Name) > MaxNameLength {
		return domainerror.NewBankAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			"account name must not exceed 100 characters",
			domainerror.ErrAccountNameTooLong,
		)
	}
	if account.StartingBalance.LessThan(decimal.Zero) {
		return domainerror.NewBankAccountError(
			domainerror.ErrCodeNegativeStartingBalance,
			"starting balance must not be negative",
			domainerror.ErrNegativeStartingBalance,
		)
	}
	if !valueobject.FitsMoneyScale(account.StartingBalance) {
		return domainerror.NewBankAccountError(
			domainerror.ErrCodeStartingBalanceTooPrecise,
			"starting balance must have at most 2 decimal places",
			domainerror.ErrAmountTooPrecise,
		)
	}
	if _, ok := entity.FindAccountColor(account.Color); !ok {
		return domainerror.NewBankAccountError(
			domainerror.ErrCodeInvalidAccountColor,
			"color must be one of the available swatches",
			domainerror.ErrInvalidAccountColor,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewBankAccountError(
		domainerror.ErrCodeBankAccountNotFound,
		"bank account not found",
		domainerror.ErrBankAccountNotFound,
	)
}
