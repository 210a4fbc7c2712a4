package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"budget-tracker/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func newRunner(t *testing.T, cfg config.DatabaseConfig) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMigrationRunner(db, &cfg, discardLogger()), mock
}

func TestNewMigrationRunner(t *testing.T) {
	cfg := config.DatabaseConfig{MigrationsPath: "db/migrations", SeedsPath: "db/seeds", AutoMigrate: true}
	runner, _ := newRunner(t, cfg)

	assert.Equal(t, "db/migrations", runner.migrationsPath)
	assert.Equal(t, "db/seeds", runner.seedsPath)
	assert.True(t, runner.autoMigrate)
	assert.False(t, runner.seed)
}

func TestWaitForDatabase_Success(t *testing.T) {
	runner, mock := newRunner(t, config.DatabaseConfig{})

	mock.ExpectPing().WillReturnError(nil)

	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	fastRetries(t, 3)
	runner, mock := newRunner(t, config.DatabaseConfig{})

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	start := time.Now()
	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), retryInterval)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	fastRetries(t, 2)
	runner, mock := newRunner(t, config.DatabaseConfig{})

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	fastRetries(t, 10)
	runner, mock := newRunner(t, config.DatabaseConfig{})

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	runner, _ := newRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent/path/to/migrations"})

	assert.NoError(t, runner.RunMigrations())
}

func TestRunIfEnabled_Disabled(t *testing.T) {
	runner, mock := newRunner(t, config.DatabaseConfig{AutoMigrate: false, MigrationsPath: t.TempDir()})

	applied, err := runner.RunIfEnabled()

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunIfEnabled_MissingDirectoryIsNotApplied(t *testing.T) {
	runner, _ := newRunner(t, config.DatabaseConfig{AutoMigrate: true, MigrationsPath: "/nonexistent/migrations"})

	applied, err := runner.RunIfEnabled()

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestLoadSeeds_DisabledByConfig(t *testing.T) {
	runner, mock := newRunner(t, config.DatabaseConfig{SeedData: false, SeedsPath: t.TempDir()})

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	runner, _ := newRunner(t, config.DatabaseConfig{SeedData: true, SeedsPath: "/nonexistent/seeds/path"})

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	runner, mock := newRunner(t, config.DatabaseConfig{SeedData: true, SeedsPath: t.TempDir()})

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	tempDir := t.TempDir()
	seedContent := `
INSERT INTO budgets (id, email, month, year, value, spent)
VALUES ('c0000000-0000-0000-0000-000000000001', 'test@example.com', 1, 2025, 1000, 0)
ON CONFLICT (email, month, year) DO NOTHING;
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_budgets.sql"), []byte(seedContent), 0644))

	runner, mock := newRunner(t, config.DatabaseConfig{SeedData: true, SeedsPath: tempDir})
	mock.ExpectExec("INSERT INTO budgets").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_bad.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "002_good.sql"), []byte("INSERT INTO users VALUES ('test');"), 0644))

	runner, mock := newRunner(t, config.DatabaseConfig{SeedData: true, SeedsPath: tempDir})
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "001_invalid.sql"), 0755))

	runner, _ := newRunner(t, config.DatabaseConfig{SeedData: true, SeedsPath: tempDir})

	err := runner.LoadSeeds()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	runner, _ := newRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent/migrations"})

	_, _, err := runner.GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
