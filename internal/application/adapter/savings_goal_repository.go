// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// SavingsGoalRepository defines the interface for savings goal persistence operations.
type SavingsGoalRepository interface {
	// Create creates a new savings goal in the scope's store.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal of the scope by its ID.
	FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindAll retrieves every savings goal of the scope, newest first.
	FindAll(ctx context.Context, scope entity.Scope) ([]*entity.SavingsGoal, error)

	// Update saves an existing savings goal.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a savings goal from the scope.
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// DeleteAll removes every savings goal of the scope and returns how many were removed.
	DeleteAll(ctx context.Context, scope entity.Scope) (int64, error)
}
