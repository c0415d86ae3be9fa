package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snnyvrz/locallibrary/internal/repository"
)

// NewTestDB opens a private in-memory sqlite database with the catalog
// schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openMemory(t, "testdb_")

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewErrorDB opens an in-memory database with no tables, so every query
// fails with a store error.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openMemory(t, "errdb_")
}

func openMemory(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	// shared-cache memory databases report SQLITE_LOCKED under concurrent
	// access, so parallel lookups take turns on one connection.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
