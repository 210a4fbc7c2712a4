package database

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the budget schema.
// Every connection to ":memory:" is a separate database, so the pool is pinned to one.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestBudget(t *testing.T, db *DB, email string, month, year int, value int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Email: email,
		Month: month,
		Year:  year,
		Value: decimal.NewFromInt(value),
		Spent: decimal.Zero,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestCategoryBudget(t *testing.T, db *DB, email, category string, month, year int, value int64) *models.CategoryBudget {
	t.Helper()

	cb := &models.CategoryBudget{
		Email:    email,
		Month:    month,
		Year:     year,
		Category: category,
		Value:    decimal.NewFromInt(value),
		Spent:    decimal.Zero,
	}
	if err := db.Create(cb).Error; err != nil {
		t.Fatalf("failed to create test category budget: %v", err)
	}

	return cb
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"category_budgets",
		"budgets",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
