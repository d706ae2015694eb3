package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/talentsift/talentsift/internal/auth/http"
	"github.com/talentsift/talentsift/internal/auth/mailer"
	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/internal/auth/store/drivers/sqlite"
	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/jwtx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db            store.Store
	accessSigner  *jwtx.HS256
	refreshSigner *jwtx.HS256

	// Services
	tokenService        *service.TokenService
	accountService      *service.AccountService
	usageService        *service.UsageService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigners(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSigners builds the two HS256 instances, one per token namespace.
func (app *Application) initSigners() error {
	access, err := jwtx.NewHS256([]byte(app.cfg.AccessSecret))
	if err != nil {
		return fmt.Errorf("access token signer: %w", err)
	}
	refresh, err := jwtx.NewHS256([]byte(app.cfg.RefreshSecret))
	if err != nil {
		return fmt.Errorf("refresh token signer: %w", err)
	}

	app.accessSigner = access
	app.refreshSigner = refresh
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Store:                app.db,
		Access:               app.accessSigner,
		Refresh:              app.refreshSigner,
		Verifier:             app.refreshSigner,
		Issuer:               app.cfg.Issuer,
		AccessTTL:            app.cfg.AccessTTL,
		RefreshTTL:           app.cfg.RefreshTTL,
		RequireVerifiedEmail: app.cfg.RequireEmailVerification,
	}

	app.accountService = &service.AccountService{
		Store:  app.db,
		Mailer: mailer.New(mailer.NewLogSender(app.logger), app.cfg.AppBaseURL),
	}

	app.usageService = &service.UsageService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.accessSigner,
		BuildVersion,
		app.cfg.CookieSecure,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.AccountService = app.accountService
	router.UsageService = app.usageService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
