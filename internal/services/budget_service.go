package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrNoBudgets              = errors.New("no budgets have been found")
	ErrBudgetAlreadyExists    = errors.New("budget already exists for this month and year")
	ErrCategoryBudgetNotFound = errors.New("category budget not found")
)

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryBudgetRepositoryInterface
	budgetLogger BudgetLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryBudgetRepositoryInterface,
	budgetLogger BudgetLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		budgetLogger: budgetLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListBudgets returns all of the caller's budgets, most recent first
func (s *budgetService) ListBudgets(ctx context.Context, id models.Identity) ([]models.Budget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListByOwner(ctx, id.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if len(budgets) == 0 {
		return nil, ErrNoBudgets
	}

	return budgets, nil
}

func (s *budgetService) GetBudget(ctx context.Context, id models.Identity, period models.Period) (*models.Budget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.GetByPeriod(ctx, id.Email, period)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return budget, nil
}

// CreateBudget stores a new budget owned by the caller. The owner in the payload is ignored.
func (s *budgetService) CreateBudget(ctx context.Context, id models.Identity, budget *models.Budget) (*models.Budget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	budget.Email = id.Email
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.budgetRepo.Exists(ctx, id.Email, budget.Period())
	if err != nil {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if exists {
		s.countOperation("create", "conflict")
		return nil, ErrBudgetAlreadyExists
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			s.countOperation("create", "conflict")
			return nil, ErrBudgetAlreadyExists
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.countOperation("create", "success")
	s.budgetLogger.LogBudgetCreated(ctx, id.Email, budget.Period(), budget.Value)

	return budget, nil
}

// UpdateBudget applies the present fields of patch to the caller's budget for period.
// An empty patch, or one that matches nothing, returns the stored budget unchanged.
func (s *budgetService) UpdateBudget(ctx context.Context, id models.Identity, period models.Period, patch *models.BudgetPatch) (*models.Budget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if err := patch.Validate(period); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return s.GetBudget(ctx, id, period)
	}

	rows, err := s.budgetRepo.Update(ctx, id.Email, period, patch.Updates(id))
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			s.countOperation("update", "conflict")
			return nil, ErrBudgetAlreadyExists
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	if rows == 0 {
		return s.GetBudget(ctx, id, period)
	}

	target := patch.Target(period)
	s.countOperation("update", "success")
	s.budgetLogger.LogBudgetUpdated(ctx, id.Email, period, target, patch.Fields())

	return s.GetBudget(ctx, id, target)
}

func (s *budgetService) DeleteBudget(ctx context.Context, id models.Identity, period models.Period) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := period.Validate(); err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(ctx, id.Email, period); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.countOperation("delete", "success")
	s.budgetLogger.LogBudgetDeleted(ctx, id.Email, period)

	return nil
}

// AccumulateSpend adds a signed change to the spent amount of the caller's budget
func (s *budgetService) AccumulateSpend(ctx context.Context, id models.Identity, period models.Period, change decimal.Decimal) (*models.Budget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.AddSpent(ctx, id.Email, period, change)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to accumulate spend: %w", err)
	}

	s.metrics.IncrementCounter(MetricSpendAccumulated, map[string]string{"scope": "budget"})
	s.budgetLogger.LogSpendAccumulated(ctx, id.Email, period, "", change, budget.Spent)

	return budget, nil
}

func (s *budgetService) AccumulateCategorySpend(ctx context.Context, id models.Identity, period models.Period, category string, change decimal.Decimal) (*models.CategoryBudget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, models.ErrEmptyCategory
	}

	budget, err := s.categoryRepo.AddSpent(ctx, id.Email, period, category, change)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryBudgetNotFound) {
			return nil, ErrCategoryBudgetNotFound
		}
		return nil, fmt.Errorf("failed to accumulate category spend: %w", err)
	}

	s.metrics.IncrementCounter(MetricSpendAccumulated, map[string]string{"scope": "category"})
	s.budgetLogger.LogSpendAccumulated(ctx, id.Email, period, category, change, budget.Spent)

	return budget, nil
}

// ListCategoryBudgets returns the caller's category budgets for period; none is not an error
func (s *budgetService) ListCategoryBudgets(ctx context.Context, id models.Identity, period models.Period) ([]models.CategoryBudget, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	budgets, err := s.categoryRepo.ListByPeriod(ctx, id.Email, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list category budgets: %w", err)
	}

	return budgets, nil
}

func (s *budgetService) countOperation(operation, status string) {
	s.metrics.IncrementCounter(MetricBudgetOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}
