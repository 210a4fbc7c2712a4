// Command budget-rollover creates next month's budgets for every user without going through HTTP.
// It is meant to run from cron near the end of each month.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"
	"budget-tracker/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	keyword := flag.String("keyword", "", "rollover keyword (defaults to ROLLOVER_KEYWORD)")
	flag.Parse()
	if *keyword == "" {
		*keyword = cfg.Rollover.Keyword
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, *keyword, logger)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, keyword string, logger *slog.Logger) int {
	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database", slog.String("error", err.Error()))
		return 1
	}
	defer db.Close()

	// metrics are not scraped from a one-shot run
	svc := server.NewServices(cfg, db.DB, prometheus.NewRegistry(), logger)

	result, err := svc.Rollover.Generate(ctx, keyword)
	if err != nil {
		attrs := []any{slog.String("error", err.Error())}
		if result != nil {
			attrs = append(attrs,
				slog.Int("users_processed", result.UsersProcessed),
				slog.Int("budgets_created", result.BudgetsCreated),
			)
		}
		logger.Error("rollover failed", attrs...)
		return 1
	}

	logger.Info(result.Message,
		slog.Int("month", result.Period.Month),
		slog.Int("year", result.Period.Year),
		slog.Int("users_processed", result.UsersProcessed),
		slog.Int("budgets_created", result.BudgetsCreated),
		slog.Int("category_budgets_created", result.CategoryBudgetsCreated),
	)
	return 0
}
