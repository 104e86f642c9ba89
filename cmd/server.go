package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mockedapi/internal/config"
	"mockedapi/internal/core"
	"mockedapi/internal/http/handler"
	"mockedapi/internal/http/handler/middleware"
	"mockedapi/internal/http/payload"
	"mockedapi/internal/http/server"
	"mockedapi/internal/storage"
	"mockedapi/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServe(_ *cobra.Command, _ []string) error {
	cfg := applyFlags(config.NewApp(), serveFlagVals)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.NewZapLogger("mockedapi", log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	srv, err := build(context.Background(), logger, cfg)
	if err != nil {
		return err
	}

	return run(srv)
}

// build wires the store, service and handlers into a ready to run server.
func build(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (*server.HTTPServer, error) {
	store, err := storage.NewFileStore(cfg.StorageFile)
	if err != nil {
		logger.Errorw("failed to open storage file", "error", err, "path", cfg.StorageFile)
		return nil, err
	}

	accounts := core.NewAccounts(logger, store)

	if cfg.SeedFile != "" {
		seed, err := storage.LoadSeed(cfg.SeedFile)
		if err != nil {
			logger.Errorw("failed to load seed file", "error", err, "path", cfg.SeedFile)
			return nil, err
		}

		added, err := accounts.Seed(ctx, seed)
		if err != nil {
			logger.Errorw("failed to seed accounts", "error", err)
			return nil, err
		}
		logger.Infow("accounts seeded", "added", added, "path", cfg.SeedFile)
	}

	accountHlr := handler.NewAccountHandler(
		logger,
		payload.Decoder{},
		accounts)

	mux := http.NewServeMux()
	accountHlr.Register(mux)

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	logger.Infow("storage ready", "path", store.Path())
	return server.NewHTTP(logger, hdlr, cfg.Port), nil
}

func applyFlags(cfg config.App, f serveFlags) config.App {
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.storageFile != "" {
		cfg.StorageFile = f.storageFile
	}
	if f.seedFile != "" {
		cfg.SeedFile = f.seedFile
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
