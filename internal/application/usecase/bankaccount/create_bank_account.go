// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateBankAccountInput represents the input for bank account creation.
type CreateBankAccountInput struct {
	Scope           entity.Scope
	Name            string
	StartingBalance decimal.Decimal
	Color           string // empty selects the default swatch
}

// CreateBankAccountOutput represents the output of bank account creation.
type CreateBankAccountOutput struct {
	Account *entity.BankAccount
}

// CreateBankAccountUseCase handles bank account creation logic.
type CreateBankAccountUseCase struct {
	accountRepo adapter.BankAccountRepository
	notifier    *subscription.Notifier
}

// NewCreateBankAccountUseCase creates a new CreateBankAccountUseCase instance.
func NewCreateBankAccountUseCase(
	accountRepo adapter.BankAccountRepository,
	notifier *subscription.Notifier,
) *CreateBankAccountUseCase {
	return &CreateBankAccountUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute performs the bank account creation.
func (uc *CreateBankAccountUseCase) Execute(ctx context.Context, input CreateBankAccountInput) (*CreateBankAccountOutput, error) {
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = entity.DefaultAccountColor.Class
	}

	account := entity.NewBankAccount(input.Scope, strings.TrimSpace(input.Name), input.StartingBalance, color)
	if err := validateAccount(account); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}

	uc.notifier.Notify(ctx, account.Scope, entity.CollectionBankAccounts, adapter.ChangeActionCreated, account.ID)

	return &CreateBankAccountOutput{Account: account}, nil
}
