package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stockroomhq/stockroom/internal/api"
	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/config"
	"github.com/stockroomhq/stockroom/internal/importer"
	"github.com/stockroomhq/stockroom/internal/inventory"
	"github.com/stockroomhq/stockroom/internal/report"
	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/jwtauth"
	"github.com/stockroomhq/stockroom/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("Stockroom Inventory Service\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting stockroom",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("build_mode", storage.BuildMode),
		zap.String("sqlite_driver", storage.DriverName))

	if err := run(cfg, log); err != nil {
		log.Fatal("service failed", zap.Error(err))
	}
	log.Info("service stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	store, err := storage.NewStore(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = store.Close() }()
	log.Info("database opened", zap.String("path", cfg.DB.Path))

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	jwtUtil, err := jwtauth.New(jwtauth.Config{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	server := api.NewServer(api.Deps{
		Store:     store,
		Inventory: inventory.NewService(store, log),
		Auth:      auth.NewService(store, log),
		Reports:   report.NewGenerator(store, log, cfg.Reports.Dir, cfg.Reports.TicketsDir),
		Importer:  importer.New(store, log),
		Settings:  settings,
		JWT:       jwtUtil,
		Log:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.String("port", cfg.Server.Port))
		if err := server.Start(cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
