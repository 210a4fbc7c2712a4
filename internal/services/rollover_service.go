package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

const RolloverSuccessMessage = "Budgets successfully generated!"

var ErrInvalidKeyword = errors.New("incorrect keyword")

type RolloverOption func(*rolloverService)

// WithClock replaces the time source used to pick the current month
func WithClock(now func() time.Time) RolloverOption {
	return func(s *rolloverService) {
		s.now = now
	}
}

type rolloverService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryBudgetRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	verifier     KeywordVerifierInterface
	defaultValue decimal.Decimal
	budgetLogger BudgetLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

func NewRolloverService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryBudgetRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	verifier KeywordVerifierInterface,
	cfg *config.RolloverConfig,
	budgetLogger BudgetLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	opts ...RolloverOption,
) RolloverServiceInterface {
	s := &rolloverService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		verifier:     verifier,
		defaultValue: cfg.DefaultValue,
		budgetLogger: budgetLogger,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate creates next month's budgets for every known user.
// Users are processed one at a time; the first store error stops the run and users
// already handled keep their new budgets. Running it again only fills the gaps.
func (s *rolloverService) Generate(ctx context.Context, keyword string) (*models.RolloverResult, error) {
	if !s.verifier.Verify(keyword) {
		s.metrics.IncrementCounter(MetricRolloverKeywordDenied, nil)
		s.budgetLogger.LogRolloverKeywordRejected(ctx)
		return nil, ErrInvalidKeyword
	}

	start := time.Now()
	current := models.PeriodOf(s.now())
	next := current.Next()

	result := &models.RolloverResult{Period: next}

	emails, err := s.userRepo.ListEmails(ctx)
	if err != nil {
		s.fail(ctx, result, "", err, start)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	s.budgetLogger.LogRolloverStarted(ctx, current, next, len(emails))

	for _, email := range emails {
		if err := ctx.Err(); err != nil {
			s.fail(ctx, result, email, err, start)
			return result, err
		}

		if err := s.rollUser(ctx, email, current, next, result); err != nil {
			s.fail(ctx, result, email, err, start)
			return result, fmt.Errorf("rollover stopped at %s: %w", email, err)
		}

		result.UsersProcessed++
	}

	result.Message = RolloverSuccessMessage

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricRolloverRun, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricRolloverDuration, duration)
	s.recordCreated(result)
	s.budgetLogger.LogRolloverCompleted(ctx, result, duration.Milliseconds())

	return result, nil
}

// rollUser carries one user's overall and category budgets from current into next
func (s *rolloverService) rollUser(ctx context.Context, email string, current, next models.Period, result *models.RolloverResult) error {
	exists, err := s.budgetRepo.Exists(ctx, email, next)
	if err != nil {
		return err
	}

	if !exists {
		// without a budget this month the user starts from the default value
		source := &models.Budget{Email: email, Value: s.defaultValue}
		currentBudget, err := s.budgetRepo.GetByPeriod(ctx, email, current)
		switch {
		case err == nil:
			source = currentBudget
		case !errors.Is(err, repositories.ErrBudgetNotFound):
			return err
		}

		created, err := s.budgetRepo.CreateIfAbsent(ctx, source.CarryOver(next))
		if err != nil {
			return err
		}
		if created {
			result.BudgetsCreated++
		}
	}

	categories, err := s.categoryRepo.ListByPeriod(ctx, email, current)
	if err != nil {
		return err
	}

	for i := range categories {
		category := &categories[i]

		exists, err := s.categoryRepo.Exists(ctx, email, next, category.Category)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		created, err := s.categoryRepo.CreateIfAbsent(ctx, category.CarryOver(next))
		if err != nil {
			return err
		}
		if created {
			result.CategoryBudgetsCreated++
		}
	}

	return nil
}

func (s *rolloverService) fail(ctx context.Context, result *models.RolloverResult, email string, err error, start time.Time) {
	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricRolloverRun, map[string]string{"status": "failed"})
	s.metrics.RecordProcessingTime(MetricRolloverDuration, duration)
	s.recordCreated(result)
	s.budgetLogger.LogRolloverFailed(ctx, result.Period, email, err.Error(), duration.Milliseconds())
}

func (s *rolloverService) recordCreated(result *models.RolloverResult) {
	s.metrics.RecordGauge(MetricRolloverBudgetsCreated, float64(result.BudgetsCreated), map[string]string{"kind": "budget"})
	s.metrics.RecordGauge(MetricRolloverBudgetsCreated, float64(result.CategoryBudgetsCreated), map[string]string{"kind": "category"})
	s.logger.Debug("rollover progress",
		slog.String("period", result.Period.String()),
		slog.Int("users_processed", result.UsersProcessed),
	)
}
