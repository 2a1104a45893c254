// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package main is the entry point for the DlaMedica events server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 loading (defaults, YAML file, env)
//  2. Logging: global zerolog logger
//  3. Store: BadgerDB key-value store for saved filters and favorites
//  4. Source: upstream event fetcher behind a circuit breaker, with the
//     built-in fallback collection seeding the first snapshot
//  5. HTTP server: chi router exposing the discovery engine
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests to complete
// (10s timeout), then closes the store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/api"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/config"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/engine"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/metrics"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/source"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/store"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("go_version", runtime.Version()).
		Msg("Starting DlaMedica events server")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	startTime := time.Now()
	go func() {
		for range time.Tick(15 * time.Second) {
			metrics.AppUptime.Set(time.Since(startTime).Seconds())
		}
	}()

	// Store: on-disk badger unless in-memory mode is requested.
	storePath := cfg.Store.Path
	if cfg.Store.InMemory {
		storePath = ""
	}
	kv, err := store.OpenBadger(storePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logging.Error().Err(cerr).Msg("Store close failed")
		}
	}()

	presets := store.NewFilterPresets(kv)
	favorites := store.NewFavorites(kv)

	// Source: the HTTP fetcher when a URL is configured, otherwise the
	// fallback collection is the only source.
	var src source.Source
	if cfg.Source.URL != "" {
		src = source.NewHTTPSource(source.HTTPConfig{
			URL:                cfg.Source.URL,
			Timeout:            cfg.Source.Timeout,
			BreakerMaxRequests: cfg.Source.BreakerMaxRequests,
			BreakerInterval:    cfg.Source.BreakerInterval,
			BreakerTimeout:     cfg.Source.BreakerTimeout,
			FailureThreshold:   cfg.Source.BreakerFailureThreshold,
		})
	} else {
		logging.Warn().Msg("No source URL configured, serving the built-in collection only")
		src = source.SourceFunc(func(ctx context.Context) ([]models.Event, error) {
			return source.Fallback(), nil
		})
	}

	loader := source.NewLoader(src)
	if cfg.Source.FetchOnStartup && cfg.Source.URL != "" {
		start := time.Now()
		snap := loader.Refresh(context.Background())
		metrics.RecordSourceFetch(time.Since(start), len(snap.Events), snap.Generation, snap.Degraded)
	}

	browser := engine.NewCachedBrowser(cfg.Engine.CacheSize, cfg.Engine.CacheTTL)
	handler := api.NewHandler(cfg, loader, browser, presets, favorites, nil)
	router := api.NewRouter(cfg, handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
