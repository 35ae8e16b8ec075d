package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ownerdesk-api/internal/application/service"
	"github.com/sangkips/ownerdesk-api/internal/config"
	"github.com/sangkips/ownerdesk-api/internal/infrastructure/database"
	"github.com/sangkips/ownerdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/routes"
	"github.com/sangkips/ownerdesk-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.New(cfg.Log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", slog.String("err", err.Error()))
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("failed to run migrations", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if cfg.Analytics.SeedDemoData {
		if err := database.SeedDemoData(ctx, db, time.Now()); err != nil {
			slog.Warn("failed to seed demo data", slog.String("err", err.Error()))
		}
	}

	// Initialize repositories
	analyticsRepo := repository.NewAnalyticsRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	dashboardService := service.NewDashboardService(analyticsRepo, orderRepo, productRepo, cfg.Business, cfg.Analytics)
	reportService := service.NewReportService(analyticsRepo, productRepo, cfg.Business, cfg.Analytics)

	// Initialize handlers
	handlers := &routes.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
		Ctx: ctx,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Analytics.QueryTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("starting server",
			slog.String("name", cfg.App.Name),
			slog.String("addr", server.Addr),
			slog.String("env", cfg.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("err", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("err", err.Error()))
		if closeErr := server.Close(); closeErr != nil {
			slog.Error("force close failed", slog.String("err", closeErr.Error()))
		}
	}
}
