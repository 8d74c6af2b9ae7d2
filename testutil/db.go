// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"lumber-inventory/config"

	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database in a per-test temp directory.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "inventory.db"),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
