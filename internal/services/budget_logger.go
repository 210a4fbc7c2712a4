package services

import (
	"context"
	"log/slog"
	"time"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

type BudgetLogger struct {
	logger *slog.Logger
}

func NewBudgetLogger(logger *slog.Logger) BudgetLoggerInterface {
	return &BudgetLogger{
		logger: logger,
	}
}

func (bl *BudgetLogger) LogBudgetCreated(ctx context.Context, email string, period models.Period, value decimal.Decimal) {
	bl.logger.InfoContext(ctx, "budget created",
		slog.String("event_type", "budget_created"),
		slog.String("email", email),
		slog.String("period", period.String()),
		slog.String("value", value.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogBudgetUpdated(ctx context.Context, email string, from, to models.Period, fields []string) {
	bl.logger.InfoContext(ctx, "budget updated",
		slog.String("event_type", "budget_updated"),
		slog.String("email", email),
		slog.String("period", from.String()),
		slog.String("new_period", to.String()),
		slog.Any("updated_fields", fields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogBudgetDeleted(ctx context.Context, email string, period models.Period) {
	bl.logger.InfoContext(ctx, "budget deleted",
		slog.String("event_type", "budget_deleted"),
		slog.String("email", email),
		slog.String("period", period.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogSpendAccumulated(ctx context.Context, email string, period models.Period, category string, change, spent decimal.Decimal) {
	bl.logger.InfoContext(ctx, "spend accumulated",
		slog.String("event_type", "spend_accumulated"),
		slog.String("email", email),
		slog.String("period", period.String()),
		slog.String("category", category),
		slog.String("change", change.String()),
		slog.String("spent", spent.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogRolloverStarted(ctx context.Context, from, to models.Period, users int) {
	bl.logger.InfoContext(ctx, "rollover started",
		slog.String("event_type", "rollover_started"),
		slog.String("from_period", from.String()),
		slog.String("to_period", to.String()),
		slog.Int("users", users),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogRolloverCompleted(ctx context.Context, result *models.RolloverResult, durationMs int64) {
	bl.logger.InfoContext(ctx, "rollover completed",
		slog.String("event_type", "rollover_completed"),
		slog.String("to_period", result.Period.String()),
		slog.Int("users_processed", result.UsersProcessed),
		slog.Int("budgets_created", result.BudgetsCreated),
		slog.Int("category_budgets_created", result.CategoryBudgetsCreated),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogRolloverFailed(ctx context.Context, to models.Period, email string, errorMsg string, durationMs int64) {
	bl.logger.ErrorContext(ctx, "rollover failed",
		slog.String("event_type", "rollover_failed"),
		slog.String("to_period", to.String()),
		slog.String("email", email),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (bl *BudgetLogger) LogRolloverKeywordRejected(ctx context.Context) {
	bl.logger.WarnContext(ctx, "rollover keyword rejected",
		slog.String("event_type", "rollover_keyword_rejected"),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}
