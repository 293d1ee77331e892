// Package server initializes and runs the main application server. It opens
// the database, applies migrations, wires the services into the HTTP API,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkravets/libshelf/internal/logging"
	"github.com/dkravets/libshelf/internal/server/config"
	"github.com/dkravets/libshelf/internal/server/httpapi"
	"github.com/dkravets/libshelf/internal/server/repositories/repomanager"
	"github.com/dkravets/libshelf/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	srv    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	contentService := services.NewContentService(db, rm)

	var mailer httpapi.Mailer
	if mailService, err := services.NewMailService(cfg); err != nil {
		logger.Warn(context.Background(), "outbound mail disabled", "reason", err.Error())
		mailer = services.DisabledMailService{}
	} else {
		mailer = mailService
	}

	srv := httpapi.NewServer(cfg, logger, userService, contentService, mailer)

	return &App{config: cfg, logger: logger, db: db, srv: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	httpServer := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.srv.Router(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
}
