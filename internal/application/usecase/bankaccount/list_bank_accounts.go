// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/application/derived"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// ListBankAccountsInput represents the input for listing bank accounts.
type ListBankAccountsInput struct {
	Scope entity.Scope
}

// ListBankAccountsOutput holds every account with its derived balance.
type ListBankAccountsOutput struct {
	Accounts []derived.AccountView
}

// ListBankAccountsUseCase lists accounts with balances derived from transactions.
type ListBankAccountsUseCase struct {
	accountRepo     adapter.BankAccountRepository
	transactionRepo adapter.TransactionRepository
	engine          *derived.Engine
}

// NewListBankAccountsUseCase creates a new ListBankAccountsUseCase instance.
func NewListBankAccountsUseCase(
	accountRepo adapter.BankAccountRepository,
	transactionRepo adapter.TransactionRepository,
	engine *derived.Engine,
) *ListBankAccountsUseCase {
	return &ListBankAccountsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute loads both collections concurrently and derives the balances.
func (uc *ListBankAccountsUseCase) Execute(ctx context.Context, input ListBankAccountsInput) (*ListBankAccountsOutput, error) {
	var (
		accounts     []*entity.BankAccount
		transactions []*entity.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = uc.accountRepo.FindAll(gctx, input.Scope)
		if err != nil {
			return fmt.Errorf("failed to list bank accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindAll(gctx, input.Scope)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListBankAccountsOutput{
		Accounts: uc.engine.ComputeAccountBalances(accounts, transactions),
	}, nil
}
