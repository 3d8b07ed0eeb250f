package db

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aldawsari/shopdesk/internal/models"
)

// openTestDB swaps the package connection for an in-memory database for
// the duration of one test.
func openTestDB(t *testing.T) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}

	old := DB
	DB = conn
	if err := runMigrations(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
		DB = old
	})
}

// setClock pins the bookkeeping clock for one test.
func setClock(t *testing.T, now func() time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = now
	t.Cleanup(func() { nowFunc = old })
}

// seedUser creates a staff account for tests.
func seedUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	user, err := CreateUser(CreateUserRequest{
		Email:    email,
		Name:     "Test User",
		Role:     role,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}
