// Package server initializes and runs the AutoBlog server. It opens the
// configured database backend, runs migrations, wires the endpoint clients
// and services, restores the persisted schedule, and starts the HTTP server
// for the dashboard.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/dmitrijs2005/autoblog/internal/server/blogger"
	"github.com/dmitrijs2005/autoblog/internal/server/config"
	"github.com/dmitrijs2005/autoblog/internal/server/gemini"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/autoblog/internal/server/services"
	"github.com/dmitrijs2005/autoblog/internal/server/web"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	scheduler *services.SchedulerService
	server    *web.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, rm, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	generator := gemini.NewClient(cfg.GenerationBaseURL, cfg.HTTPClientTimeout, logger)
	publisher := blogger.NewClient(cfg.PublishingBaseURL, cfg.HTTPClientTimeout, logger)

	settingsRepo := rm.Settings(db)
	ledger := rm.Posts(db)

	credentials := services.NewCredentialService(settingsRepo, generator, logger)
	pipeline := services.NewPipelineService(credentials, generator, publisher, ledger, logger)
	postService := services.NewPostService(ledger)
	scheduler := services.NewSchedulerService(settingsRepo, pipeline, cfg.SchedulerCatchUp, logger)

	srv := web.NewServer(cfg.EndpointAddrHTTP, logger, credentials, pipeline, postService, scheduler)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		scheduler: scheduler,
		server:    srv,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.scheduler.Restore(ctx); err != nil {
		app.logger.Error(ctx, "failed to restore schedule", "error", err.Error())
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.scheduler.Stop()
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "failed to close db", "error", err.Error())
	}
}
