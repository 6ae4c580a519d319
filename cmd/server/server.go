// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

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

	"github.com/google/uuid"

	"github.com/tomtom215/roomrec/internal/api"
	"github.com/tomtom215/roomrec/internal/config"
	"github.com/tomtom215/roomrec/internal/logging"
	"github.com/tomtom215/roomrec/internal/supervisor"
	"github.com/tomtom215/roomrec/internal/supervisor/services"
)

// runServer wires every component and blocks until SIGINT or SIGTERM.
//
//nolint:gocyclo // sequential setup steps
func runServer(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logCfg.Service = "roomrec"
	logCfg.Version = version
	logging.Init(logCfg)

	instanceID := instanceName()
	logging.Info().
		Str("instance", instanceID).
		Str("store_backend", cfg.Store.Backend).
		Str("table", cfg.Store.Table).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting roomrec")
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin while authentication is enabled")
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rec, err := initRecommend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Backend.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store backend")
		}
	}()

	evt, err := initEvents(cfg, rec.Engine, instanceID)
	if err != nil {
		return err
	}
	if evt != nil {
		defer func() {
			if err := evt.Bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event bus")
			}
		}()
	}

	authMW, authzMW, err := initAuth(cfg)
	if err != nil {
		return err
	}

	chiCfg := api.DefaultChiMiddlewareConfig()
	chiCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	chiCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	chiCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled

	handler := api.NewHandler(rec.Engine, api.HandlerConfig{
		Version:        version,
		RequestTimeout: cfg.Server.Timeout,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(chiCfg), authMW, authzMW)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewRoomsService(rec.Engine, services.RoomsServiceConfig{
		ReloadInterval: cfg.Recommend.ReloadInterval,
	}, logging.Logger()))
	if evt != nil {
		tree.AddMessagingService(evt.Consumer)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("roomrec stopped")
	return nil
}

// instanceName tags published events so replicas can tell their own
// changes from others'.
func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "roomrec"
	}
	return host + "-" + uuid.NewString()[:8]
}
