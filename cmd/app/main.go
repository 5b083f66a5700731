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

	"tubertreats/cmd"
	"tubertreats/internal/adapters/out/memory"
	"tubertreats/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := kernel.SystemClock()
	store := memory.NewStore()
	if err = store.Seed(ctx, clock.Now()); err != nil {
		log.Fatalf("Error seeding store: %v", err)
	}

	app := cmd.NewCompositionRoot(config, store, clock, logger)
	if err = startWebServer(ctx, app, config, logger); err != nil {
		log.Fatalf("Web server stopped: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	e, err := cmd.NewWebServer(app, config)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server", "port", config.HTTPPort, "env", config.AppEnv)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down web server", "timeout", config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
