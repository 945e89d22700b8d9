// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
)

// savingsGoalRepository implements the adapter.SavingsGoalRepository interface.
type savingsGoalRepository struct {
	selector *DBSelector
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(selector *DBSelector) adapter.SavingsGoalRepository {
	return &savingsGoalRepository{
		selector: selector,
	}
}

// Create creates a new savings goal in the database.
func (r *savingsGoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	db, err := r.selector.For(ctx, goal.Scope)
	if err != nil {
		return err
	}
	return db.Create(model.SavingsGoalFromEntity(goal)).Error
}

// FindByID retrieves a savings goal by its ID.
func (r *savingsGoalRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.SavingsGoal, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var goalModel model.SavingsGoalModel
	result := scoped(db, scope).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingsGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves every savings goal of the scope, newest first.
func (r *savingsGoalRepository) FindAll(ctx context.Context, scope entity.Scope) ([]*entity.SavingsGoal, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var goalModels []model.SavingsGoalModel
	result := scoped(db, scope).Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update updates an existing savings goal in the database.
func (r *savingsGoalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	db, err := r.selector.For(ctx, goal.Scope)
	if err != nil {
		return err
	}

	result := scoped(db.Model(&model.SavingsGoalModel{}), goal.Scope).
		Where("id = ?", goal.ID).
		Select("*").
		Updates(model.SavingsGoalFromEntity(goal))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingsGoalNotFound
	}
	return nil
}

// Delete removes a savings goal from the database.
func (r *savingsGoalRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return err
	}

	result := scoped(db, scope).Where("id = ?", id).Delete(&model.SavingsGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingsGoalNotFound
	}
	return nil
}

// DeleteAll removes every savings goal of the scope.
func (r *savingsGoalRepository) DeleteAll(ctx context.Context, scope entity.Scope) (int64, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return 0, err
	}

	result := scoped(db, scope).Delete(&model.SavingsGoalModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
