// Package main - Entry point for the quotepilot HTTP server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quotepilot/api"
	"quotepilot/core/engine"
	"quotepilot/internal/config"
	"quotepilot/internal/logging"
	"quotepilot/models"
)

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	cfgFile := flag.String("config", "", "Config file (default is $HOME/.quotepilot.json)")
	addr := flag.String("addr", "", "Server address (overrides server.addr)")
	uiPath := flag.String("ui", "", "Path to UI files (overrides server.ui_path)")
	flag.Parse()

	if err := run(*cfgFile, *addr, *uiPath); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
	logging.Sync()
}

func run(cfgFile, addr, uiPath string) error {
	if cfgFile == "" {
		cfgFile = config.DefaultPath()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if uiPath != "" {
		cfg.Server.UIPath = uiPath
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger := logging.Logger

	// Registration errors abort startup
	catalog, err := models.Bootstrap(logger)
	if err != nil {
		return err
	}

	server := api.NewServer(engine.New(catalog, engine.WithLogger(logger)), api.Options{
		Version: version,
		UIPath:  cfg.Server.UIPath,
		Mode:    cfg.Server.Mode,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("quotepilot server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", version),
			zap.String("ui", cfg.Server.UIPath),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
