// Command dashboard serves the inventory dashboard API over HTTP. The
// dataset is loaded through a cache keyed on file modification time, so
// a replaced data file is picked up without a restart.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartstock/internal/config"
	"smartstock/internal/dataset"
	"smartstock/internal/services"
	transport "smartstock/internal/transport/http"
	"smartstock/pkg/contracts"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "sales CSV, raw or enriched (overrides config)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *addr != "" {
		cfg.Dashboard.Addr = *addr
	}

	cache := dataset.NewCache(logger)
	service := services.NewDashboard(cache, cfg.DataFile, cfg.Dashboard.StockoutThreshold, logger)
	router := transport.NewRouter(service, logger)

	server := &http.Server{
		Addr:         cfg.Dashboard.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Fail fast on an unreadable dataset instead of at first request.
	if _, err := cache.Load(context.Background(), cfg.DataFile); err != nil {
		slog.Error("failed to load dataset", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening",
			"version", contracts.Version,
			"addr", cfg.Dashboard.Addr,
			"data", cfg.DataFile)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("dashboard stopped")
}
