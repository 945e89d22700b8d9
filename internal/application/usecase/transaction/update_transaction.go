// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents a partial transaction update. Nil fields
// are left unchanged.
type UpdateTransactionInput struct {
	Scope               entity.Scope
	TransactionID       uuid.UUID
	Date                *string
	Time                *string
	Category            *string
	Amount              *decimal.Decimal
	Description         *string
	BankAccountID       *uuid.UUID
	ClearBankAccount    bool // Set to true to unlink the bank account
	IsRecurring         *bool
	RecurrenceFrequency *string
	RecurrenceEndDate   *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        *subscription.Notifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	notifier *subscription.Notifier,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.Scope, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Date != nil {
		txn.Date = strings.TrimSpace(*input.Date)
	}
	if input.Time != nil {
		txn.Time = strings.TrimSpace(*input.Time)
	}
	if input.Category != nil {
		txn.Category = strings.TrimSpace(*input.Category)
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Description != nil {
		txn.Description = strings.TrimSpace(*input.Description)
	}

	if input.ClearBankAccount {
		txn.BankAccountID = nil
	} else if input.BankAccountID != nil {
		txn.BankAccountID = input.BankAccountID
	}

	recurring := txn.IsRecurring
	if input.IsRecurring != nil {
		recurring = *input.IsRecurring
	}
	frequency := txn.RecurrenceFrequency
	if input.RecurrenceFrequency != nil {
		frequency = frequencyOf(input.RecurrenceFrequency)
	}
	endDate := txn.RecurrenceEndDate
	if input.RecurrenceEndDate != nil {
		endDate = emptyToNil(input.RecurrenceEndDate)
	}
	txn.SetRecurrence(recurring, frequency, endDate)

	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.notifier.Notify(ctx, txn.Scope, entity.CollectionTransactions, adapter.ChangeActionUpdated, txn.ID)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
