// Package testdb opens isolated, migrated in-memory SQLite databases for
// tests.
package testdb

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	_ "github.com/DevOps-Sum22-Inventory-Squad/inventory/database/migrations"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/database"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/migration"
)

// New returns a fresh database with every registered migration applied.
// It is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("testdb: open: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("testdb: sql.DB: %v", err)
	}
	// One connection keeps the shared-cache database alive and serialises access.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.New(db).WithOutput(io.Discard).Run(); err != nil {
		t.Fatalf("testdb: migrate: %v", err)
	}
	return db
}
