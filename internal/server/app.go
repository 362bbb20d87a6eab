// Package server initializes and runs the printdesk API server.
// It opens the database, applies migrations, wires services to the HTTP
// transport and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/printdesk/internal/logging"
	"github.com/dmitrijs2005/printdesk/internal/server/auth"
	"github.com/dmitrijs2005/printdesk/internal/server/config"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/printdesk/internal/server/rest"
	"github.com/dmitrijs2005/printdesk/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp opens the database and builds the application. The caller owns the
// returned App and must Run it to release the database.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	if c.MigrateOnStart {
		logger.Info(ctx, "Applying migrations...")
		if err := rm.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("db migration error: %w", err)
		}
	}

	hasher := auth.NewHasher(c.BcryptCost)
	tokens := auth.NewTokenIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	us := services.NewUserService(db, rm, hasher)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewDBStatsCollector(db, "printdesk"),
	)

	handler := rest.NewRouter(rest.Deps{
		Auth:        services.NewAuthService(us, hasher, tokens),
		Users:       us,
		Printers:    services.NewPrinterService(db, rm),
		Permissions: services.NewPermissionService(db, rm),
		Tokens:      tokens,
		DB:          db,
		Metrics:     rest.NewMetrics(registry),
		Logger:      logger,
	})

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
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

// Run serves HTTP until ctx is cancelled or a stop signal arrives, then
// shuts the server down and closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.handler, app.logger, app.config.ShutdownTimeout)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "http server error", "error", runErr.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
