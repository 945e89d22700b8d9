// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the scope's store.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget of the scope by its ID.
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Budget, error)

	// FindAll retrieves every budget of the scope, ordered by category.
	FindAll(ctx context.Context, scope entity.Scope) ([]*entity.Budget, error)

	// ExistsByCategory checks whether the scope has a budget for the category,
	// ignoring the budget with excludeID.
	ExistsByCategory(ctx context.Context, scope entity.Scope, category string, excludeID uuid.UUID) (bool, error)

	// Update saves an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the scope.
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// DeleteAll removes every budget of the scope and returns how many were removed.
	DeleteAll(ctx context.Context, scope entity.Scope) (int64, error)
}
