package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/repositories/repository_mocks"
	"budget-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func fixedClock(month time.Month, year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RolloverServiceSuite covers the rollover control flow against repository mocks
type RolloverServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	budgetRepo   *repository_mocks.MockBudgetRepositoryInterface
	categoryRepo *repository_mocks.MockCategoryBudgetRepositoryInterface
	userRepo     *repository_mocks.MockUserRepositoryInterface
	budgetLogger *service_mocks.MockBudgetLoggerInterface
	metrics      *PrometheusMetrics
	service      *rolloverService
	ctx          context.Context
	current      models.Period
	next         models.Period
}

func (s *RolloverServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryBudgetRepositoryInterface(s.ctrl)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.budgetLogger = service_mocks.NewMockBudgetLoggerInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	cfg := &config.RolloverConfig{Keyword: "open-sesame", DefaultValue: decimal.NewFromInt(1000)}
	s.service = NewRolloverService(s.budgetRepo,
		s.categoryRepo,
		s.userRepo,
		NewKeywordVerifier(cfg),
		cfg,
		s.budgetLogger,
		s.metrics,
		discardLogger(),
		WithClock(fixedClock(time.June, 2024))).(*rolloverService)

	s.ctx = context.Background()
	s.current = models.Period{Month: 6, Year: 2024}
	s.next = models.Period{Month: 7, Year: 2024}
}

func (s *RolloverServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRolloverServiceSuite(t *testing.T) {
	suite.Run(t, new(RolloverServiceSuite))
}

func (s *RolloverServiceSuite) TestGenerate_WrongKeywordWritesNothing() {
	s.budgetLogger.EXPECT().LogRolloverKeywordRejected(s.ctx)

	result, err := s.service.Generate(s.ctx, "guess")

	s.ErrorIs(err, ErrInvalidKeyword)
	s.Nil(result)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.rolloverKeywordDenied))
}

func (s *RolloverServiceSuite) TestGenerate_ListUsersFails() {
	s.userRepo.EXPECT().ListEmails(s.ctx).Return(nil, errors.New("db down"))
	s.budgetLogger.EXPECT().LogRolloverFailed(s.ctx, s.next, "", "db down", gomock.Any())

	result, err := s.service.Generate(s.ctx, "open-sesame")

	s.Error(err)
	s.Nil(result)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.rolloverRuns.WithLabelValues("failed")))
}

func (s *RolloverServiceSuite) TestGenerate_UsesDefaultValueWithoutCurrentBudget() {
	email := "new@example.com"

	s.userRepo.EXPECT().ListEmails(s.ctx).Return([]string{email}, nil)
	s.budgetLogger.EXPECT().LogRolloverStarted(s.ctx, s.current, s.next, 1)
	s.budgetRepo.EXPECT().Exists(s.ctx, email, s.next).Return(false, nil)
	s.budgetRepo.EXPECT().GetByPeriod(s.ctx, email, s.current).Return(nil, repositories.ErrBudgetNotFound)
	s.budgetRepo.EXPECT().CreateIfAbsent(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Budget) (bool, error) {
			s.Equal(s.next, b.Period())
			s.True(b.Value.Equal(decimal.NewFromInt(1000)))
			s.True(b.Spent.IsZero())
			return true, nil
		})
	s.categoryRepo.EXPECT().ListByPeriod(s.ctx, email, s.current).Return([]models.CategoryBudget{}, nil)
	s.budgetLogger.EXPECT().LogRolloverCompleted(s.ctx, gomock.Any(), gomock.Any())

	result, err := s.service.Generate(s.ctx, "open-sesame")

	s.Require().NoError(err)
	s.Equal(RolloverSuccessMessage, result.Message)
	s.Equal(1, result.UsersProcessed)
	s.Equal(1, result.BudgetsCreated)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.rolloverRuns.WithLabelValues("success")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.rolloverBudgetsCreated.WithLabelValues("budget")))
}

func (s *RolloverServiceSuite) TestGenerate_StopsAtFirstFailure() {
	s.userRepo.EXPECT().ListEmails(s.ctx).Return([]string{"a@example.com", "b@example.com", "c@example.com"}, nil)
	s.budgetLogger.EXPECT().LogRolloverStarted(s.ctx, s.current, s.next, 3)

	// a is already rolled, b breaks the run, c is never touched
	s.budgetRepo.EXPECT().Exists(s.ctx, "a@example.com", s.next).Return(true, nil)
	s.categoryRepo.EXPECT().ListByPeriod(s.ctx, "a@example.com", s.current).Return(nil, nil)
	s.budgetRepo.EXPECT().Exists(s.ctx, "b@example.com", s.next).Return(false, errors.New("lock timeout"))
	s.budgetLogger.EXPECT().LogRolloverFailed(s.ctx, s.next, "b@example.com", "lock timeout", gomock.Any())

	result, err := s.service.Generate(s.ctx, "open-sesame")

	s.Error(err)
	s.Contains(err.Error(), "b@example.com")
	s.Require().NotNil(result)
	s.Equal(1, result.UsersProcessed)
	s.Empty(result.Message)
}

func (s *RolloverServiceSuite) TestGenerate_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.userRepo.EXPECT().ListEmails(ctx).Return([]string{"a@example.com"}, nil)
	s.budgetLogger.EXPECT().LogRolloverStarted(ctx, s.current, s.next, 1)
	s.budgetLogger.EXPECT().LogRolloverFailed(ctx, s.next, "a@example.com", context.Canceled.Error(), gomock.Any())

	result, err := s.service.Generate(ctx, "open-sesame")

	s.ErrorIs(err, context.Canceled)
	s.Equal(0, result.UsersProcessed)
}

// RolloverStoreSuite runs the rollover end to end against the sqlite schema
type RolloverStoreSuite struct {
	suite.Suite
	db  *database.DB
	ctx context.Context
	cfg *config.RolloverConfig
}

func (s *RolloverStoreSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.cfg = &config.RolloverConfig{Keyword: config.DefaultRolloverKeyword, DefaultValue: decimal.NewFromInt(1000)}
}

func (s *RolloverStoreSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestRolloverStoreSuite(t *testing.T) {
	suite.Run(t, new(RolloverStoreSuite))
}

func (s *RolloverStoreSuite) newService(now func() time.Time) RolloverServiceInterface {
	logger := discardLogger()
	return NewRolloverService(
		repositories.NewBudgetRepository(s.db.DB),
		repositories.NewCategoryBudgetRepository(s.db.DB),
		repositories.NewUserRepository(s.db.DB),
		NewKeywordVerifier(s.cfg),
		s.cfg,
		NewBudgetLogger(logger),
		NewPrometheusMetrics(prometheus.NewRegistry()),
		logger,
		WithClock(now),
	)
}

func (s *RolloverStoreSuite) countBudgets(period models.Period) int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Budget{}).
		Where("month = ? AND year = ?", period.Month, period.Year).
		Count(&count).Error)
	return count
}

func (s *RolloverStoreSuite) TestGenerate_CopiesValuesAndCategories() {
	database.CreateTestUser(s.T(), s.db, "alice@example.com")
	database.CreateTestUser(s.T(), s.db, "bob@example.com")
	current := database.CreateTestBudget(s.T(), s.db, "alice@example.com", 3, 2024, 2500)
	s.Require().NoError(s.db.Model(current).Update("spent", decimal.NewFromInt(700)).Error)
	database.CreateTestCategoryBudget(s.T(), s.db, "alice@example.com", "groceries", 3, 2024, 400)
	database.CreateTestCategoryBudget(s.T(), s.db, "alice@example.com", "rent", 3, 2024, 1200)

	result, err := s.newService(fixedClock(time.March, 2024)).Generate(s.ctx, config.DefaultRolloverKeyword)

	s.Require().NoError(err)
	s.Equal(RolloverSuccessMessage, result.Message)
	s.Equal(models.Period{Month: 4, Year: 2024}, result.Period)
	s.Equal(2, result.UsersProcessed)
	s.Equal(2, result.BudgetsCreated)
	s.Equal(2, result.CategoryBudgetsCreated)

	var alice models.Budget
	s.Require().NoError(s.db.Where("email = ? AND month = ? AND year = ?", "alice@example.com", 4, 2024).First(&alice).Error)
	s.True(alice.Value.Equal(decimal.NewFromInt(2500)))
	s.True(alice.Spent.IsZero())

	var bob models.Budget
	s.Require().NoError(s.db.Where("email = ? AND month = ? AND year = ?", "bob@example.com", 4, 2024).First(&bob).Error)
	s.True(bob.Value.Equal(decimal.NewFromInt(1000)))

	var categories []models.CategoryBudget
	s.Require().NoError(s.db.Where("email = ? AND month = ? AND year = ?", "alice@example.com", 4, 2024).
		Order("category").Find(&categories).Error)
	s.Require().Len(categories, 2)
	s.Equal("groceries", categories[0].Category)
	s.True(categories[1].Value.Equal(decimal.NewFromInt(1200)))
	s.True(categories[1].Spent.IsZero())
}

func (s *RolloverStoreSuite) TestGenerate_DecemberRollsIntoJanuary() {
	database.CreateTestUser(s.T(), s.db, "alice@example.com")
	database.CreateTestBudget(s.T(), s.db, "alice@example.com", 12, 2024, 900)

	result, err := s.newService(fixedClock(time.December, 2024)).Generate(s.ctx, config.DefaultRolloverKeyword)

	s.Require().NoError(err)
	s.Equal(models.Period{Month: 1, Year: 2025}, result.Period)
	s.Equal(int64(1), s.countBudgets(models.Period{Month: 1, Year: 2025}))
	s.Equal(int64(0), s.countBudgets(models.Period{Month: 13, Year: 2024}))
}

func (s *RolloverStoreSuite) TestGenerate_IsIdempotent() {
	database.CreateTestUser(s.T(), s.db, "alice@example.com")
	database.CreateTestBudget(s.T(), s.db, "alice@example.com", 5, 2024, 300)
	database.CreateTestCategoryBudget(s.T(), s.db, "alice@example.com", "fuel", 5, 2024, 80)

	service := s.newService(fixedClock(time.May, 2024))

	first, err := service.Generate(s.ctx, config.DefaultRolloverKeyword)
	s.Require().NoError(err)
	s.Equal(1, first.BudgetsCreated)

	second, err := service.Generate(s.ctx, config.DefaultRolloverKeyword)
	s.Require().NoError(err)
	s.Equal(0, second.BudgetsCreated)
	s.Equal(0, second.CategoryBudgetsCreated)
	s.Equal(int64(1), s.countBudgets(models.Period{Month: 6, Year: 2024}))
}

func (s *RolloverStoreSuite) TestGenerate_KeepsExistingNextMonthBudget() {
	database.CreateTestUser(s.T(), s.db, "alice@example.com")
	database.CreateTestBudget(s.T(), s.db, "alice@example.com", 5, 2024, 300)
	database.CreateTestBudget(s.T(), s.db, "alice@example.com", 6, 2024, 999)

	result, err := s.newService(fixedClock(time.May, 2024)).Generate(s.ctx, config.DefaultRolloverKeyword)

	s.Require().NoError(err)
	s.Equal(0, result.BudgetsCreated)

	var june models.Budget
	s.Require().NoError(s.db.Where("email = ? AND month = ? AND year = ?", "alice@example.com", 6, 2024).First(&june).Error)
	s.True(june.Value.Equal(decimal.NewFromInt(999)))
}

func (s *RolloverStoreSuite) TestGenerate_WrongKeywordLeavesStoreUntouched() {
	database.CreateTestUser(s.T(), s.db, "alice@example.com")

	_, err := s.newService(fixedClock(time.May, 2024)).Generate(s.ctx, "verySecurePassword!")

	s.ErrorIs(err, ErrInvalidKeyword)
	s.Equal(int64(0), s.countBudgets(models.Period{Month: 6, Year: 2024}))
}

func (s *RolloverStoreSuite) TestGenerate_AcceptsDirectoryEmailsWithoutDottedDomain() {
	database.CreateTestUser(s.T(), s.db, "aaa-ops@localhost")
	database.CreateTestUser(s.T(), s.db, "zed@example.com")

	result, err := s.newService(fixedClock(time.June, 2024)).Generate(s.ctx, config.DefaultRolloverKeyword)

	s.Require().NoError(err)
	s.Equal(2, result.UsersProcessed)
	s.Equal(2, result.BudgetsCreated)

	for _, email := range []string{"aaa-ops@localhost", "zed@example.com"} {
		var budget models.Budget
		s.Require().NoError(s.db.Where("email = ? AND month = ? AND year = ?", email, 7, 2024).First(&budget).Error, email)
		s.True(budget.Value.Equal(decimal.NewFromInt(1000)))
	}
}
