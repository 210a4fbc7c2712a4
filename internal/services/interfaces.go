package services

import (
	"context"
	"time"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetServiceInterface defines budget operations. Every call is scoped to the caller's identity.
type BudgetServiceInterface interface {
	ListBudgets(ctx context.Context, id models.Identity) ([]models.Budget, error)
	GetBudget(ctx context.Context, id models.Identity, period models.Period) (*models.Budget, error)
	CreateBudget(ctx context.Context, id models.Identity, budget *models.Budget) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id models.Identity, period models.Period, patch *models.BudgetPatch) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id models.Identity, period models.Period) error
	AccumulateSpend(ctx context.Context, id models.Identity, period models.Period, change decimal.Decimal) (*models.Budget, error)
	AccumulateCategorySpend(ctx context.Context, id models.Identity, period models.Period, category string, change decimal.Decimal) (*models.CategoryBudget, error)
	ListCategoryBudgets(ctx context.Context, id models.Identity, period models.Period) ([]models.CategoryBudget, error)
}

// RolloverServiceInterface generates next month's budgets from the current month
type RolloverServiceInterface interface {
	Generate(ctx context.Context, keyword string) (*models.RolloverResult, error)
}

type KeywordVerifierInterface interface {
	Verify(keyword string) bool
}

type TokenServiceInterface interface {
	GenerateAccessToken(email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type BudgetLoggerInterface interface {
	LogBudgetCreated(ctx context.Context, email string, period models.Period, value decimal.Decimal)
	LogBudgetUpdated(ctx context.Context, email string, from, to models.Period, fields []string)
	LogBudgetDeleted(ctx context.Context, email string, period models.Period)
	LogSpendAccumulated(ctx context.Context, email string, period models.Period, category string, change, spent decimal.Decimal)
	LogRolloverStarted(ctx context.Context, from, to models.Period, users int)
	LogRolloverCompleted(ctx context.Context, result *models.RolloverResult, durationMs int64)
	LogRolloverFailed(ctx context.Context, to models.Period, email string, errorMsg string, durationMs int64)
	LogRolloverKeywordRejected(ctx context.Context)
}
