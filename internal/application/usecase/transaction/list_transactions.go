// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Scope     entity.Scope
	StartDate *civil.Date
	EndDate   *civil.Date
	Category  string
	Search    string
	Account   derived.AccountSelector
	Limit     int // 0 means no limit
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Total        int // matches before Limit was applied
}

// ListTransactionsUseCase handles listing and filtering transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute loads the scope's transactions and applies the filters, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionFilter,
			"endDate must not be before startDate",
			nil,
		)
	}

	all, err := uc.transactionRepo.FindAll(ctx, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	matched := uc.engine.FilterTransactions(all, derived.Filters{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Category:    input.Category,
		Description: input.Search,
		Account:     input.Account,
	})

	output := &ListTransactionsOutput{
		Transactions: matched,
		Total:        len(matched),
	}
	if input.Limit > 0 && len(matched) > input.Limit {
		output.Transactions = matched[:input.Limit]
	}
	return output, nil
}
