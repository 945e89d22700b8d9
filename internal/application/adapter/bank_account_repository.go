// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// BankAccountRepository defines the interface for bank account persistence operations.
type BankAccountRepository interface {
	// Create creates a new bank account in the scope's store.
	Create(ctx context.Context, account *entity.BankAccount) error

	// FindByID retrieves a bank account of the scope by its ID.
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.BankAccount, error)

	// FindAll retrieves every bank account of the scope, ordered by name.
	FindAll(ctx context.Context, scope entity.Scope) ([]*entity.BankAccount, error)

	// Update saves an existing bank account.
	Update(ctx context.Context, account *entity.BankAccount) error

	// Delete removes a bank account. Linked transactions are left untouched.
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// DeleteAll removes every bank account of the scope and returns how many were removed.
	DeleteAll(ctx context.Context, scope entity.Scope) (int64, error)
}
