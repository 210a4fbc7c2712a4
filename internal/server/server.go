package server

import (
	"context"
	"log/slog"

	"budget-tracker/internal/config"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is both where collectors are registered and what /metrics exposes
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

type Server struct {
	echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
	cfg         *config.Config
	logger      *slog.Logger
}

// New assembles the echo instance: middleware chain, error handler and route table
func New(cfg *config.Config, svc *Services, db handlers.HealthChecker, reg Registry, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(reg, logger).Handle
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	registerRoutes(e, svc, db, reg)

	return &Server{
		echo:        e,
		rateLimiter: rateLimiter,
		cfg:         cfg,
		logger:      logger,
	}
}

func registerRoutes(e *echo.Echo, svc *Services, db handlers.HealthChecker, reg prometheus.Gatherer) {
	healthHandler := handlers.NewHealthCheckHandler(db)
	budgetHandler := handlers.NewBudgetHandler(svc.Budget)
	rolloverHandler := handlers.NewRolloverHandler(svc.Rollover)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	budget := e.Group("/budget", middleware.RequireAuth(svc.Token))
	budget.GET("/all", budgetHandler.GetAllBudgets)
	budget.GET("", budgetHandler.GetBudget)
	budget.POST("", budgetHandler.CreateBudget)
	budget.PUT("", budgetHandler.UpdateBudget)
	budget.DELETE("", budgetHandler.DeleteBudget)
	budget.PATCH("/spent", budgetHandler.AccumulateSpend)
	budget.GET("/category/all", budgetHandler.GetCategoryBudgets)

	// guarded by the rollover keyword, not by a caller token
	e.POST("/generateBudget", rolloverHandler.GenerateBudgets)
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

// Start serves until the listener fails or Shutdown is called.
// The rate limiter's cleanup loop stops with ctx.
func (s *Server) Start(ctx context.Context) error {
	go s.rateLimiter.Run(ctx)

	s.logger.Info("http: listening", slog.String("addr", s.cfg.Server.Address()))
	return s.echo.Start(s.cfg.Server.Address())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
