// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the scope's store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction of the scope by its ID.
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves every transaction of the scope.
	FindAll(ctx context.Context, scope entity.Scope) ([]*entity.Transaction, error)

	// Update saves an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the scope.
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// DeleteAll removes every transaction of the scope and returns how many were removed.
	DeleteAll(ctx context.Context, scope entity.Scope) (int64, error)
}
