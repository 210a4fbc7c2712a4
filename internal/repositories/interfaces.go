package repositories

import (
	"context"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetRepositoryInterface defines the contract for monthly budget storage.
// Every lookup is scoped by the owner's email.
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	CreateIfAbsent(ctx context.Context, budget *models.Budget) (bool, error)
	GetByPeriod(ctx context.Context, email string, period models.Period) (*models.Budget, error)
	Exists(ctx context.Context, email string, period models.Period) (bool, error)
	ListByOwner(ctx context.Context, email string) ([]models.Budget, error)
	Update(ctx context.Context, email string, period models.Period, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, email string, period models.Period) error
	AddSpent(ctx context.Context, email string, period models.Period, change decimal.Decimal) (*models.Budget, error)
}

// CategoryBudgetRepositoryInterface defines the contract for per-category budget storage
type CategoryBudgetRepositoryInterface interface {
	CreateIfAbsent(ctx context.Context, budget *models.CategoryBudget) (bool, error)
	Exists(ctx context.Context, email string, period models.Period, category string) (bool, error)
	ListByPeriod(ctx context.Context, email string, period models.Period) ([]models.CategoryBudget, error)
	AddSpent(ctx context.Context, email string, period models.Period, category string, change decimal.Decimal) (*models.CategoryBudget, error)
}

// UserRepositoryInterface is the read-only view of the user directory
type UserRepositoryInterface interface {
	ListEmails(ctx context.Context) ([]string, error)
}
