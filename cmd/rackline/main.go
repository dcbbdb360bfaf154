// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command rackline runs the Rackline site API: an in-memory CMS and catalog
// store behind a JSON route layer.
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

	"github.com/joho/godotenv"

	"github.com/rackline/rackline-go/internal/ai"
	"github.com/rackline/rackline-go/internal/auth"
	"github.com/rackline/rackline-go/internal/cache"
	"github.com/rackline/rackline-go/internal/config"
	"github.com/rackline/rackline-go/internal/geoip"
	"github.com/rackline/rackline-go/internal/handler"
	"github.com/rackline/rackline-go/internal/logging"
	"github.com/rackline/rackline-go/internal/middleware"
	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/scheduler"
	"github.com/rackline/rackline-go/internal/session"
	"github.com/rackline/rackline-go/internal/store"
	"github.com/rackline/rackline-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	st := store.New()

	// WARN+ records land in the store's activity log alongside admin actions.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logging.NewActivityLogHandler(textHandler, st))
	slog.SetDefault(logger)

	info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
	logger.Info("starting rackline",
		"version", info.Version, "commit", info.GitCommit, "env", cfg.Env)

	if cfg.DoSeed {
		st.SeedDemo(logger)
	}
	if err := bootstrapAdmin(st, cfg, logger); err != nil {
		return err
	}

	cacher := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}, logger)
	defer func() { _ = cacher.Close() }()
	catalogCache := cache.NewCatalogCache(cacher, 5*time.Minute)

	sessionManager := session.New(cfg.IsDevelopment())

	var geo *geoip.Lookup
	if cfg.GeoIPEnabled() {
		geo = geoip.NewLookup()
		if err := geo.Init(cfg.GeoIPDBPath); err != nil {
			logger.Warn("geoip disabled", "error", err)
			geo = nil
		} else {
			defer func() { _ = geo.Close() }()
		}
	}

	sched := scheduler.New(st, geo, cfg.BackupSchedule, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	var drafter *ai.Generator
	if cfg.AIEnabled() {
		drafter = ai.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Info("ai drafting enabled", "model", cfg.OpenAIModel)
	}

	h := handler.New(handler.Config{
		Store:     st,
		Sessions:  sessionManager,
		Catalog:   catalogCache,
		Scheduler: sched,
		Drafter:   drafter,
		Logger:    logger,
		Version:   info,
	})

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	csrfProtect := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	var root http.Handler = h.Routes()
	root = middleware.Activity(st, sessionManager, geo)(root)
	root = csrfProtect(root)
	// Public forms are posted by non-browser clients without Fetch metadata.
	root = middleware.SkipCSRF(
		"/api/contact", "/api/domain-contact", "/api/popup-lead",
		"/api/orders", "/api/quote",
	)(root)
	root = sessionManager.LoadAndSave(root)
	root = rateLimiter.Middleware()(root)
	root = middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment()))(root)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// bootstrapAdmin provisions the back-office account from the environment on
// first boot. The store is empty on every start, so without this there would
// be no way to log in.
func bootstrapAdmin(st *store.Store, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Warn("no admin password configured; admin API is unreachable until one is set")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	admin, err := st.CreateAdminUser(store.CreateAdminUserParams{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	logger.Info("admin account provisioned", "username", admin.Username)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
