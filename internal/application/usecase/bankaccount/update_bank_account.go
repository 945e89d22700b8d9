// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// UpdateBankAccountInput represents a partial bank account update.
type UpdateBankAccountInput struct {
	Scope           entity.Scope
	AccountID       uuid.UUID
	Name            *string
	StartingBalance *decimal.Decimal
	Color           *string
}

// UpdateBankAccountOutput represents the output of bank account update.
type UpdateBankAccountOutput struct {
	Account *entity.BankAccount
}

// UpdateBankAccountUseCase handles bank account update logic.
type UpdateBankAccountUseCase struct {
	accountRepo adapter.BankAccountRepository
	notifier    *subscription.Notifier
}

// NewUpdateBankAccountUseCase creates a new UpdateBankAccountUseCase instance.
func NewUpdateBankAccountUseCase(
	accountRepo adapter.BankAccountRepository,
	notifier *subscription.Notifier,
) *UpdateBankAccountUseCase {
	return &UpdateBankAccountUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute performs the bank account update.
func (uc *UpdateBankAccountUseCase) Execute(ctx context.Context, input UpdateBankAccountInput) (*UpdateBankAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.Scope, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBankAccountNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find bank account: %w", err)
	}

	if input.Name != nil {
		account.Name = strings.TrimSpace(*input.Name)
	}
	if input.StartingBalance != nil {
		account.StartingBalance = *input.StartingBalance
	}
	if input.Color != nil {
		account.Color = strings.TrimSpace(*input.Color)
	}

	if err := validateAccount(account); err != nil {
		return nil, err
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}

	uc.notifier.Notify(ctx, account.Scope, entity.CollectionBankAccounts, adapter.ChangeActionUpdated, account.ID)

	return &UpdateBankAccountOutput{Account: account}, nil
}
