//go:build integration

// Package mock provides in-memory stand-ins for the stores and clock used by
// the integration suite.
package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/finance-pal/backend/internal/infra/db"
)

var dbsMu sync.Mutex
var dbs = map[string]*Db{}

// Db is an in-memory SQLite store standing in for one of the backing stores.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	models   map[string]any
}

// NewDb returns the shared in-memory store with the given name, creating and
// migrating it on first use.
func NewDb(name string, models map[string]any) *Db {
	dbsMu.Lock()
	defer dbsMu.Unlock()

	if existing, ok := dbs[name]; ok {
		return existing
	}

	database, err := db.NewSQLiteConnection(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		panic(fmt.Sprintf("failed to open %s store. err: %s", name, err.Error()))
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := database.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate %s store. err: %s", name, err.Error()))
	}

	created := &Db{
		Database: database,
		DbConn:   database.DB(),
		models:   models,
	}
	dbs[name] = created
	return created
}

// ClearDB deletes every row of every model table.
func (d *Db) ClearDB() error {
	// Transactions reference bank accounts, so they go first.
	order := []string{"transactions", "bank_accounts", "budgets", "savings_goals"}
	for _, table := range order {
		model, ok := d.models[table]
		if !ok {
			continue
		}
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
