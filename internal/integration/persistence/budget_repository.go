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

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	selector *DBSelector
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(selector *DBSelector) adapter.BudgetRepository {
	return &budgetRepository{
		selector: selector,
	}
}

// Create creates a new budget in the database. A second budget for the same
// category in the scope fails with ErrBudgetCategoryExists.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	db, err := r.selector.For(ctx, budget.Scope)
	if err != nil {
		return err
	}
	if err := db.Create(model.BudgetFromEntity(budget)).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerror.ErrBudgetCategoryExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Budget, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var budgetModel model.BudgetModel
	result := scoped(db, scope).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves every budget of the scope ordered by category.
func (r *budgetRepository) FindAll(ctx context.Context, scope entity.Scope) ([]*entity.Budget, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var budgetModels []model.BudgetModel
	result := scoped(db, scope).Order("category ASC").Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// ExistsByCategory checks if the scope already budgets the category.
func (r *budgetRepository) ExistsByCategory(ctx context.Context, scope entity.Scope, category string, excludeID uuid.UUID) (bool, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return false, err
	}

	var count int64
	result := scoped(db.Model(&model.BudgetModel{}), scope).
		Where("category = ? AND id <> ?", category, excludeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	db, err := r.selector.For(ctx, budget.Scope)
	if err != nil {
		return err
	}

	result := scoped(db.Model(&model.BudgetModel{}), budget.Scope).
		Where("id = ?", budget.ID).
		Select("*").
		Updates(model.BudgetFromEntity(budget))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrBudgetCategoryExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return err
	}

	result := scoped(db, scope).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// DeleteAll removes every budget of the scope.
func (r *budgetRepository) DeleteAll(ctx context.Context, scope entity.Scope) (int64, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return 0, err
	}

	result := scoped(db, scope).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
