package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"parcel-backoffice/internal/config"
	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/logger"
	"parcel-backoffice/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if code := exitCode(log, run(cfg, log)); code != 0 {
		os.Exit(code)
	}
}

// exitCode logs a fatal run error and flushes log, since os.Exit skips the
// deferred Sync.
func exitCode(log *zap.Logger, err error) int {
	if err == nil {
		return 0
	}
	log.Error("server stopped with error", zap.Error(err))
	_ = log.Sync()
	return 1
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("connecting to postgres", zap.Int32("max_conns", cfg.DBMaxConns))
	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	e := server.New(cfg, pool, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.ServerPort), zap.String("static_dir", cfg.StaticDir))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
