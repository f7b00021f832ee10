// @title           HeroTracker API
// @version         1.0
// @description     Hero and badge XP progression: level lookups, goal projections and tracked roster summaries.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/HeroTracker_Go/internal/bootstrap"
	"github.com/osse101/HeroTracker_Go/internal/config"
	"github.com/osse101/HeroTracker_Go/internal/database"
	"github.com/osse101/HeroTracker_Go/internal/server"
	"github.com/osse101/HeroTracker_Go/internal/tracker"
	"github.com/osse101/HeroTracker_Go/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("HeroTracker exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	progression, err := bootstrap.LoadProgressionConfig(cfg, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	ctx := context.Background()
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	eventBus, eventHub := bootstrap.InitializeEventSystem()

	svc := tracker.NewService(repos.Tracker, progression.Table, progression.Achievements, eventBus, tracker.Config{
		MaxLevel:        cfg.MaxLevel,
		MilestoneLevels: cfg.MilestoneLevels,
		CacheSize:       cfg.SummaryCacheSize,
		CacheTTL:        cfg.SummaryCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		CurveName:      cfg.CurveFile,
		Events:         eventHub,
	}, dbPool, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})

	return runErr
}
