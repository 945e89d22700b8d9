package db

import (
	"context"
	"testing"
)

func TestNewSQLiteConnection(t *testing.T) {
	database, err := NewSQLiteConnection("file:db_connection_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("NewSQLiteConnection() error = %v", err)
	}
	defer database.Close()

	if database.Name() != "sqlite" {
		t.Errorf("Name() = %q, want sqlite", database.Name())
	}
	if err := database.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	type sample struct {
		ID   int `gorm:"primaryKey"`
		Note string
	}
	if err := database.AutoMigrate(&sample{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	if !database.DB().Migrator().HasTable(&sample{}) {
		t.Error("expected sample table to exist after AutoMigrate")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries)%2 != 0 || len(entries) == 0 {
		t.Errorf("expected paired up/down migrations, got %d files", len(entries))
	}
}
