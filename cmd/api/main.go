// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Bookmanager HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from the environment (and an optional .env file).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire services and handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/bookmanager/internal/api"
	"github.com/taibuivan/bookmanager/internal/core/book"
	"github.com/taibuivan/bookmanager/internal/core/language"
	"github.com/taibuivan/bookmanager/internal/platform/config"
	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/internal/platform/flash"
	"github.com/taibuivan/bookmanager/internal/platform/googlebooks"
	"github.com/taibuivan/bookmanager/internal/platform/migration"
	pgstore "github.com/taibuivan/bookmanager/internal/platform/postgres"
	redisstore "github.com/taibuivan/bookmanager/internal/platform/redis"
	"github.com/taibuivan/bookmanager/internal/web"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Int("page_size", cfg.PageSize),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_closing")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	cover := book.CoverCodec{Placeholder: cfg.DefaultCoverURI}

	languageService := language.NewService(language.NewPostgresRepository(pool))
	bookService := book.NewService(book.NewPostgresRepository(pool, cover), languageService, cover)

	catalog := googlebooks.NewClient(googlebooks.Config{
		BaseURL:  cfg.GoogleBooksURL,
		APIKey:   cfg.GoogleBooksAPIKey,
		PageSize: cfg.PageSize,
		CoverURI: cfg.DefaultCoverURI,
	})

	pages, err := web.NewHandler(web.Dependencies{
		Books:     bookService,
		Languages: languageService,
		Catalog:   catalog,
		Flashes:   flash.NewRedisStore(rdb),
		PageSize:  cfg.PageSize,
	})
	must(log, err, "parse page templates")

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Pages:     pages,
		Books:     book.NewHandler(bookService, cfg.PageSize),
		Languages: language.NewHandler(languageService),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger returns the JSON logger tagged with the application name and
// installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(logger)
	return logger
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
