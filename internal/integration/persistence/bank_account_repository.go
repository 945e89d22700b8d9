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

// bankAccountRepository implements the adapter.BankAccountRepository interface.
type bankAccountRepository struct {
	selector *DBSelector
}

// NewBankAccountRepository creates a new bank account repository instance.
func NewBankAccountRepository(selector *DBSelector) adapter.BankAccountRepository {
	return &bankAccountRepository{
		selector: selector,
	}
}

// Create creates a new bank account in the database.
func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	db, err := r.selector.For(ctx, account.Scope)
	if err != nil {
		return err
	}
	return db.Create(model.BankAccountFromEntity(account)).Error
}

// FindByID retrieves a bank account by its ID.
func (r *bankAccountRepository) FindByID(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.BankAccount, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var accountModel model.BankAccountModel
	result := scoped(db, scope).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBankAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAll retrieves every bank account of the scope ordered by name.
func (r *bankAccountRepository) FindAll(ctx context.Context, scope entity.Scope) ([]*entity.BankAccount, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return nil, err
	}

	var accountModels []model.BankAccountModel
	result := scoped(db, scope).Order("name ASC").Order("created_at ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.BankAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToEntity()
	}
	return accounts, nil
}

// Update updates an existing bank account in the database.
func (r *bankAccountRepository) Update(ctx context.Context, account *entity.BankAccount) error {
	db, err := r.selector.For(ctx, account.Scope)
	if err != nil {
		return err
	}

	result := scoped(db.Model(&model.BankAccountModel{}), account.Scope).
		Where("id = ?", account.ID).
		Select("*").
		Updates(model.BankAccountFromEntity(account))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBankAccountNotFound
	}
	return nil
}

// Delete removes a bank account from the database. Transactions that point at
// it keep their link and simply stop matching any account.
func (r *bankAccountRepository) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return err
	}

	result := scoped(db, scope).Where("id = ?", id).Delete(&model.BankAccountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBankAccountNotFound
	}
	return nil
}

// DeleteAll removes every bank account of the scope.
func (r *bankAccountRepository) DeleteAll(ctx context.Context, scope entity.Scope) (int64, error) {
	db, err := r.selector.For(ctx, scope)
	if err != nil {
		return 0, err
	}

	result := scoped(db, scope).Delete(&model.BankAccountModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
