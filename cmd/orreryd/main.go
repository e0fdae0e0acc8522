// Orreryd is the orrery gallery daemon.
//
// It serves the project store and the composed 3D scene over HTTP,
// seeds sample projects into an empty store, and optionally watches a
// projects seed file for hot reload.
//
// Usage:
//
//	# Start with defaults (localhost:8123, ./orrery.db)
//	orreryd
//
//	# Configure via file and environment
//	orreryd -config ~/.config/orrery/config.yaml
//	ORRERY_SERVER_PORT=9000 orreryd
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/config"
	"github.com/orrerylabs/orrery/internal/gallery"
	httpapi "github.com/orrerylabs/orrery/internal/http"
	"github.com/orrerylabs/orrery/internal/logging"
	"github.com/orrerylabs/orrery/internal/scene"
	"github.com/orrerylabs/orrery/internal/store"
	"github.com/orrerylabs/orrery/internal/telemetry"
	"github.com/orrerylabs/orrery/internal/watch"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("orreryd %s (%s)\n", version, gitCommit)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil {
		log.Fatalf("orreryd: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tel, err := telemetry.Init(ctx, &cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := seedStore(ctx, cfg, st, logger); err != nil {
		return err
	}

	composer := scene.NewComposer(&cfg.Scene, logger.Named("scene"))
	server, err := httpapi.NewServer(st, composer, logger.Named("http"), &httpapi.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	if err != nil {
		return err
	}

	// First load; a failure here is not fatal, it surfaces as the
	// Error phase with a retry affordance.
	if err := server.LoadFromStore(ctx); err != nil {
		logger.Warn("initial scene load failed", zap.Error(err))
	}

	if cfg.Seed.Watch {
		watcher, err := watch.New(cfg.Seed.Path, func() {
			reloadFromSeed(ctx, cfg.Seed.Path, st, server, logger)
		}, logger.Named("watch"))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// seedStore imports the configured seed file, or the built-in samples
// when the store is empty and no seed file is configured.
func seedStore(ctx context.Context, cfg *config.Config, st *store.Store, logger *zap.Logger) error {
	if cfg.Seed.Path != "" {
		projects, err := gallery.ReadSeedFile(cfg.Seed.Path)
		if err != nil {
			return err
		}
		if err := st.ReplaceAllProjects(ctx, projects); err != nil {
			return err
		}
		logger.Info("imported seed file",
			zap.String("path", cfg.Seed.Path),
			zap.Int("projects", len(projects)),
		)
		return nil
	}

	n, err := st.CountProjects(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		samples := gallery.SampleProjects()
		if err := st.ReplaceAllProjects(ctx, samples); err != nil {
			return err
		}
		logger.Info("seeded sample projects", zap.Int("projects", len(samples)))
	}
	return nil
}

// reloadFromSeed re-imports the seed file and drives the scene through
// a reload. Import failures surface as the Error phase.
func reloadFromSeed(ctx context.Context, path string, st *store.Store, server *httpapi.Server, logger *zap.Logger) {
	projects, err := gallery.ReadSeedFile(path)
	if err != nil {
		logger.Error("re-importing seed file", zap.Error(err))
		return
	}
	if err := st.ReplaceAllProjects(ctx, projects); err != nil {
		logger.Error("replacing projects", zap.Error(err))
		return
	}
	if err := server.LoadFromStore(ctx); err != nil {
		logger.Error("reloading scene", zap.Error(err))
	}
}
