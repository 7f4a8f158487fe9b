package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema
// migrated. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
