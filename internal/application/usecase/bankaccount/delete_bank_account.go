// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// DeleteBankAccountInput represents the input for bank account deletion.
type DeleteBankAccountInput struct {
	Scope     entity.Scope
	AccountID uuid.UUID
}

// DeleteBankAccountUseCase handles bank account deletion. Transactions linked
// to the account keep their reference and drop out of every account view.
type DeleteBankAccountUseCase struct {
	accountRepo adapter.BankAccountRepository
	notifier    *subscription.Notifier
}

// NewDeleteBankAccountUseCase creates a new DeleteBankAccountUseCase instance.
func NewDeleteBankAccountUseCase(
	accountRepo adapter.BankAccountRepository,
	notifier *subscription.Notifier,
) *DeleteBankAccountUseCase {
	return &DeleteBankAccountUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute performs the bank account deletion.
func (uc *DeleteBankAccountUseCase) Execute(ctx context.Context, input DeleteBankAccountInput) error {
	if err := uc.accountRepo.Delete(ctx, input.Scope, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrBankAccountNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete bank account: %w", err)
	}

	uc.notifier.Notify(ctx, input.Scope, entity.CollectionBankAccounts, adapter.ChangeActionDeleted, input.AccountID)

	return nil
}
