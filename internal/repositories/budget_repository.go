package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func ownerPeriod(db *gorm.DB, email string, period models.Period) *gorm.DB {
	return db.Where("email = ? AND month = ? AND year = ?", email, period.Month, period.Year)
}

// Create inserts a budget. A concurrent insert for the same period loses on the unique index.
func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts the budget unless its period is already taken and reports whether it did
func (r *budgetRepository) CreateIfAbsent(ctx context.Context, budget *models.Budget) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(budget)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert budget: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *budgetRepository) GetByPeriod(ctx context.Context, email string, period models.Period) (*models.Budget, error) {
	var budget models.Budget
	if err := ownerPeriod(r.db.WithContext(ctx), email, period).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) Exists(ctx context.Context, email string, period models.Period) (bool, error) {
	var count int64
	if err := ownerPeriod(r.db.WithContext(ctx).Model(&models.Budget{}), email, period).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check budget existence: %w", err)
	}
	return count > 0, nil
}

// ListByOwner returns the owner's budgets, most recent period first
func (r *budgetRepository) ListByOwner(ctx context.Context, email string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("year DESC").Order("month DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// Update writes only the given columns and returns the number of matched rows
func (r *budgetRepository) Update(ctx context.Context, email string, period models.Period, updates map[string]interface{}) (int64, error) {
	result := ownerPeriod(r.db.WithContext(ctx).Model(&models.Budget{}), email, period).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return 0, ErrBudgetAlreadyExists
		}
		return 0, fmt.Errorf("failed to update budget: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *budgetRepository) Delete(ctx context.Context, email string, period models.Period) error {
	result := ownerPeriod(r.db.WithContext(ctx), email, period).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// AddSpent adjusts spent by a signed change under a row lock
func (r *budgetRepository) AddSpent(ctx context.Context, email string, period models.Period, change decimal.Decimal) (*models.Budget, error) {
	var budget models.Budget

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownerPeriod(tx.Clauses(clause.Locking{Strength: "UPDATE"}), email, period).First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBudgetNotFound
			}
			return fmt.Errorf("failed to lock budget: %w", err)
		}

		budget.AddSpent(change)

		if err := tx.Model(&budget).Select("spent", "updated_at").Updates(&budget).Error; err != nil {
			return fmt.Errorf("failed to save budget spend: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &budget, nil
}
