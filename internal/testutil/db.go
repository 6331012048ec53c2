package testutil

import (
	"testing"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory sqlite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.RaffleNumber{},
		&model.Buyer{},
		&model.RaffleRequest{},
		&model.RequestNumber{},
		&model.RaffleSettings{},
		&model.Profile{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// SeedNumbers creates available ledger rows for 1..n.
func SeedNumbers(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	rows := make([]model.RaffleNumber, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, model.RaffleNumber{Number: i, Status: model.NumberStatusAvailable})
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed numbers: %v", err)
	}
}

// SeedProfile creates a staff profile row.
func SeedProfile(t *testing.T, db *gorm.DB, id, name string, role model.Role) {
	t.Helper()
	p := model.Profile{ID: id, Name: name, Email: id + "@example.com", Color: "#0EA5E9", Role: role}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}
