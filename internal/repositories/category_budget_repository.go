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

type categoryBudgetRepository struct {
	db *gorm.DB
}

func NewCategoryBudgetRepository(db *gorm.DB) CategoryBudgetRepositoryInterface {
	return &categoryBudgetRepository{db: db}
}

func ownerCategory(db *gorm.DB, email string, period models.Period, category string) *gorm.DB {
	return ownerPeriod(db, email, period).Where("category = ?", category)
}

func (r *categoryBudgetRepository) CreateIfAbsent(ctx context.Context, budget *models.CategoryBudget) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(budget)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert category budget: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *categoryBudgetRepository) Exists(ctx context.Context, email string, period models.Period, category string) (bool, error) {
	var count int64
	if err := ownerCategory(r.db.WithContext(ctx).Model(&models.CategoryBudget{}), email, period, category).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category budget existence: %w", err)
	}
	return count > 0, nil
}

func (r *categoryBudgetRepository) ListByPeriod(ctx context.Context, email string, period models.Period) ([]models.CategoryBudget, error) {
	budgets := make([]models.CategoryBudget, 0)
	if err := ownerPeriod(r.db.WithContext(ctx), email, period).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list category budgets: %w", err)
	}
	return budgets, nil
}

func (r *categoryBudgetRepository) AddSpent(ctx context.Context, email string, period models.Period, category string, change decimal.Decimal) (*models.CategoryBudget, error) {
	var budget models.CategoryBudget

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownerCategory(tx.Clauses(clause.Locking{Strength: "UPDATE"}), email, period, category).First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryBudgetNotFound
			}
			return fmt.Errorf("failed to lock category budget: %w", err)
		}

		budget.AddSpent(change)

		if err := tx.Model(&budget).Select("spent", "updated_at").Updates(&budget).Error; err != nil {
			return fmt.Errorf("failed to save category budget spend: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &budget, nil
}
