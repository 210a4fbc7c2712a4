package server

import (
	"log/slog"

	"budget-tracker/internal/config"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Services holds the business layer shared by the HTTP API and the rollover command
type Services struct {
	Budget   services.BudgetServiceInterface
	Rollover services.RolloverServiceInterface
	Token    services.TokenServiceInterface
}

// NewServices builds repositories over db and the services on top of them.
// Budget metrics are registered on reg.
func NewServices(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger, opts ...services.RolloverOption) *Services {
	budgetRepo := repositories.NewBudgetRepository(db)
	categoryRepo := repositories.NewCategoryBudgetRepository(db)
	userRepo := repositories.NewUserRepository(db)

	budgetLogger := services.NewBudgetLogger(logger)
	metrics := services.NewPrometheusMetrics(reg)

	return &Services{
		Budget: services.NewBudgetService(budgetRepo, categoryRepo, budgetLogger, metrics, logger),
		Rollover: services.NewRolloverService(
			budgetRepo,
			categoryRepo,
			userRepo,
			services.NewKeywordVerifier(&cfg.Rollover),
			&cfg.Rollover,
			budgetLogger,
			metrics,
			logger,
			opts...,
		),
		Token: services.NewTokenService(&cfg.JWT),
	}
}
