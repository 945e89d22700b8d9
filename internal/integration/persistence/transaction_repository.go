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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	selector *DBSelector
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(selector *DBSelector) adapter.TransactionRepository {
	return &transactionRepository{
		selector: selector,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	db, err := r.selector.For(ctx, transaction.Scope)
	if err != nil {
		return err
	}
	return db.Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Transaction, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var transactionModel model.TransactionModel
	result := scoped(db, scope).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindAll retrieves every transaction of the scope in insertion order.
// Display order is decided by the derived-state engine.
func (r *transactionRepository) FindAll(ctx context.Context, scope entity.Scope) ([]*entity.Transaction, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	result := scoped(db, scope).Order("created_at ASC").Order("id ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	db, err := r.selector.For(ctx, transaction.Scope)
	if err != nil {
		return err
	}

	result := scoped(db.Model(&model.TransactionModel{}), transaction.Scope).
		Where("id = ?", transaction.ID).
		Select("*").
		Updates(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return err
	}

	result := scoped(db, scope).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// DeleteAll removes every transaction of the scope.
func (r *transactionRepository) DeleteAll(ctx context.Context, scope entity.Scope) (int64, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return 0, err
	}

	result := scoped(db, scope).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
