// Package server wires configuration, storage, services and the HTTP surface
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avolkovs/sitekeeper/internal/logging"
	"github.com/avolkovs/sitekeeper/internal/server/config"
	"github.com/avolkovs/sitekeeper/internal/server/httpapi"
	"github.com/avolkovs/sitekeeper/internal/server/ratelimit"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
	"github.com/avolkovs/sitekeeper/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	limiter *ratelimit.Limiter
	api     *httpapi.Server
	admins  *services.AdminService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	limiter, err := ratelimit.New(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	adminService := services.NewAdminService(db, rm, cfg)

	api := httpapi.NewServer(
		logger,
		adminService,
		services.NewBlogService(db, rm),
		services.NewProductService(db, rm),
		services.NewContactService(db, rm),
		services.NewContentService(db, rm),
		services.NewDashboardService(db, rm),
		services.NewMediaService(cfg),
		limiter,
	)

	app := &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		limiter: limiter,
		api:     api,
		admins:  adminService,
	}

	ctx := context.Background()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	admin, created, err := adminService.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin error: %w", err)
	}
	if created {
		logger.Info(ctx, "bootstrap admin created", "email", admin.Email)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a signal arrives, then
// shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.limiter.Close(); err != nil {
		app.logger.Error(shutdownCtx, "redis close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	return nil
}
