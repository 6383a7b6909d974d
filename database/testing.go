package database

import (
	"testing"

	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDB swaps DB for an in-memory sqlite instance so handler and
// store tests run without a Postgres server.
func ConnectTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.InfluencerProfile{},
		&models.BrandProfile{},
		&models.Campaign{},
		&models.Message{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = db
}
