// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// DBSelector routes each scope to its backing store: authenticated users to
// the remote database and the guest scope to the device-local database.
type DBSelector struct {
	remote *gorm.DB
	local  *gorm.DB
}

// NewDBSelector creates a new DBSelector. Either database may be nil when
// that store is not configured.
func NewDBSelector(remote, local *gorm.DB) *DBSelector {
	return &DBSelector{
		remote: remote,
		local:  local,
	}
}

// For returns a session of the scope's database restricted to the scope's rows.
func (s *DBSelector) For(ctx context.Context, scope entity.Scope) (*gorm.DB, error) {
	db := s.remote
	if scope.IsGuest() {
		db = s.local
	}
	if db == nil {
		return nil, domainerror.ErrStoreUnavailable
	}
	return db.WithContext(ctx), nil
}

// scoped restricts a query to the rows owned by scope.
func scoped(db *gorm.DB, scope entity.Scope) *gorm.DB {
	return db.Where("scope_kind = ? AND user_id = ?", string(scope.Kind), scope.UserID)
}
