// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Scope               entity.Scope
	Date                string
	Time                string
	Category            string
	Amount              decimal.Decimal
	Description         string
	BankAccountID       *uuid.UUID
	IsRecurring         bool
	RecurrenceFrequency *string
	RecurrenceEndDate   *string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        *subscription.Notifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	notifier *subscription.Notifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	txn := entity.NewTransaction(
		input.Scope,
		strings.TrimSpace(input.Date),
		strings.TrimSpace(input.Time),
		strings.TrimSpace(input.Category),
		input.Amount,
		strings.TrimSpace(input.Description),
		input.BankAccountID,
	)
	txn.SetRecurrence(input.IsRecurring, frequencyOf(input.RecurrenceFrequency), emptyToNil(input.RecurrenceEndDate))

	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.notifier.Notify(ctx, txn.Scope, entity.CollectionTransactions, adapter.ChangeActionCreated, txn.ID)

	return &CreateTransactionOutput{Transaction: txn}, nil
}
