package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	adapterreporting "github.com/thermovote/thermovote/internal/adapters/reporting"
	"github.com/thermovote/thermovote/internal/adapters/storage"
	webserver "github.com/thermovote/thermovote/internal/adapters/web/server"
	"github.com/thermovote/thermovote/internal/config"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
	"github.com/thermovote/thermovote/internal/core/services/history"
	"github.com/thermovote/thermovote/internal/core/services/presence"
	"github.com/thermovote/thermovote/internal/core/services/reporting"
	"github.com/thermovote/thermovote/internal/core/services/snapshot"
	"github.com/thermovote/thermovote/internal/core/services/votes"
	"github.com/thermovote/thermovote/internal/telemetry"
)

// Application holds the core components of the application.
// It acts as the Facade for the entire system, orchestrating services and
// infrastructure.
type Application struct {
	Config      *config.Config
	Storage     ports.Storage
	VoteService *votes.Service
	History     *history.SeriesBuilder
	Presence    *presence.Tracker
	Snapshots   *snapshot.Recorder
	WebServer   *webserver.Server
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	store, err := app.initStorage()
	if err != nil {
		return err
	}
	app.Storage = store

	// 2. Seed Data
	if err := store.SeedZones(context.Background(), domain.SeedZones()); err != nil {
		return fmt.Errorf("failed to seed zones: %w", err)
	}

	// 3. Domain Services
	app.Presence = presence.NewTracker(store, app.Config.SessionTTL)
	app.VoteService = votes.NewService(store, store, store, app.Presence, app.Config.VoteWindow)
	app.History = history.NewSeriesBuilder(store)
	app.Snapshots = snapshot.NewRecorder(store, store)

	// 4. Web Server
	reportGenerator := reporting.NewComfortReportGenerator(app.VoteService)
	app.WebServer = webserver.NewServer(
		app.Config.Addr,
		app.Config.StaticDir,
		app.VoteService,
		app.History,
		app.Presence,
		reportGenerator,
		adapterreporting.NewPDFExporter(),
	)

	// Votes push live updates through the websocket manager
	app.VoteService.SetNotifier(app.WebServer.WSManager)

	return nil
}

func (app *Application) initStorage() (ports.Storage, error) {
	if app.Config.InMemory {
		log.Println("Using ephemeral in-memory storage")
		return storage.NewMemoryAdapter(), nil
	}

	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	store, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	return store, nil
}

// Run starts the application components and manages their execution
// lifecycle.
func (app *Application) Run(ctx context.Context) error {
	slog.Info("Starting thermovote components...")

	// 1. Background Loops
	app.Presence.StartSweepLoop(ctx, app.Config.SweepInterval)
	app.Snapshots.Start(ctx, app.Config.SnapshotPeriod)

	// 2. Web Server
	errChan := make(chan error, 1)
	go func() {
		if err := app.WebServer.Run(ctx); err != nil {
			errChan <- fmt.Errorf("web server error: %w", err)
		}
	}()

	slog.Info("thermovote ready", "addr", app.Config.Addr)

	select {
	case <-ctx.Done():
		slog.Info("Termination signal received")
	case err := <-errChan:
		return err
	}

	return app.cleanup()
}

func (app *Application) cleanup() error {
	slog.Info("Cleaning up resources...")

	if app.Storage != nil {
		return app.Storage.Close()
	}
	return nil
}
