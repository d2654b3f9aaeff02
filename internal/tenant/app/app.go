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

	httpapi "github.com/teamgatehq/teamgate/internal/tenant/http"
	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite"
	"github.com/teamgatehq/teamgate/pkg/jwtx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tenant service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	provider identity.Provider

	// Services
	guardService        *service.GuardService
	onboardingService   *service.OnboardingService
	invitationService   *service.InvitationService
	userService         *service.UserService
	companyService      *service.CompanyService
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
			Service: "tenant-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Session tokens are signed with an ephemeral key: a restart logs
	// everyone out, which is fine for dashboard sessions.
	signer, err := jwtx.NewEphemeralSigner(cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("tenant service starting", "port", app.cfg.Port, "version", BuildVersion)

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

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tenant service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("tenant service stopped")
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

// initServices initializes the identity provider and all business services
func (app *Application) initServices() {
	app.provider = identity.NewLocal(app.db, app.signer, app.cfg.SessionTTL)

	app.guardService = &service.GuardService{
		Store:    app.db,
		Identity: app.provider,
	}
	app.onboardingService = &service.OnboardingService{
		Store:    app.db,
		Identity: app.provider,
	}
	app.invitationService = &service.InvitationService{
		Store:    app.db,
		Identity: app.provider,
	}
	app.userService = &service.UserService{Store: app.db}
	app.companyService = &service.CompanyService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.GuardService = app.guardService
	router.OnboardingService = app.onboardingService
	router.InvitationService = app.invitationService
	router.UserService = app.userService
	router.CompanyService = app.companyService
	router.PublicBaseURL = app.cfg.PublicBaseURL
	router.AuthHandler = &httpapi.AuthHandler{
		Identity:   app.provider,
		SessionTTL: int(app.cfg.SessionTTL.Seconds()),
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
