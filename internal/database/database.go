package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
	logger *slog.Logger
}

func New(cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{
		DB:     db,
		config: cfg,
		logger: logger,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Budget{},
		&models.CategoryBudget{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the secondary indexes the unique constraints do not cover.
// The rollover scans a whole period, so budgets are also indexed by (year, month).
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_budgets_period ON budgets(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_category_budgets_period ON category_budgets(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_category_budgets_owner ON category_budgets(email)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			db.logger.Warn("failed to create index", slog.String("query", query), slog.String("error", err.Error()))
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, &cfg.Database, logger)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return nil, fmt.Errorf("database readiness check failed: %w", err)
	}

	applied, err := runner.RunIfEnabled()
	if err != nil {
		logger.Warn("migration runner failed, falling back to GORM AutoMigrate", slog.String("error", err.Error()))
	}

	if !applied {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		logger.Warn("failed to create some indexes", slog.String("error", err.Error()))
	}

	logger.Info("database initialized", slog.String("host", cfg.Database.Host), slog.String("name", cfg.Database.Name))

	return db, nil
}
