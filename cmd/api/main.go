// Copyright (c) 2026 CollegeSathi. All rights reserved.

// Command api is the entry point for the CollegeSathi HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize JWT signing and object storage.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/collegesathi/api/internal/api"
	"github.com/collegesathi/api/internal/catalog/college"
	"github.com/collegesathi/api/internal/catalog/news"
	"github.com/collegesathi/api/internal/catalog/review"
	"github.com/collegesathi/api/internal/platform/config"
	"github.com/collegesathi/api/internal/platform/constants"
	"github.com/collegesathi/api/internal/platform/migration"
	"github.com/collegesathi/api/internal/platform/objstore"
	pgstore "github.com/collegesathi/api/internal/platform/postgres"
	redisstore "github.com/collegesathi/api/internal/platform/redis"
	"github.com/collegesathi/api/internal/platform/sec"
	"github.com/collegesathi/api/internal/users/account"
	"github.com/collegesathi/api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[CollegeSathi] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context lives for the whole process; background middleware
	// (rate limiter cleanup) keys off it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup context with a 30s deadline so misconfiguration is caught
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. JWT & Object Storage ───────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// Logo storage is optional; without credentials the directory runs
	// fine and only logo uploads are rejected.
	var storage *objstore.Client
	if cfg.S3Bucket != "" {
		storage, err = objstore.NewClient(objstore.Config{
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			CDNBase:   cfg.S3CDNBase,
		}, log)
		must(log, err, "initialize object storage")
	} else {
		log.Warn("object storage not configured, logo uploads disabled")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	verificationTokenRepository := auth.NewVerificationTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, verificationTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	accountService := account.NewService(account.NewAccountRepository(pool), account.NewSessionRepository(pool), log)
	accountHandler := account.NewHandler(accountService)

	collegeRepository := college.NewRepository(pool)
	collegeService := college.NewService(collegeRepository, storage)
	collegeHandler := college.NewHandler(collegeService)

	reviewRepository := review.NewRepository(pool)
	reviewService := review.NewService(reviewRepository, collegeRepository)
	reviewHandler := review.NewHandler(reviewService)

	newsRepository := news.NewRepository(pool)
	newsService := news.NewService(newsRepository)
	newsHandler := news.NewHandler(newsService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		College:   collegeHandler,
		Review:    reviewHandler,
		News:      newsHandler,
	}

	server := api.NewServer(rootCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
