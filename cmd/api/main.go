// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from .env files and environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis, or fall back to the in-process session registry.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
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

	"github.com/taibuivan/catalog/internal/api"
	"github.com/taibuivan/catalog/internal/chat"
	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/core/section"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/migration"
	pgstore "github.com/taibuivan/catalog/internal/platform/postgres"
	redisstore "github.com/taibuivan/catalog/internal/platform/redis"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	envFile, err := config.LoadDotEnv(config.DefaultEnvFiles...)
	must(log, err, "load dotenv")

	cfg, err := config.Load()
	must(log, err, "load configuration")

	log = newLogger(cfg.SlogLevel())
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("env_file", envFile),
	)

	// Root context for startup. A deadline catches misconfiguration quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	checks := []api.Check{{
		Name: "postgres",
		Run:  func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}}

	// ── 4. Session Registry ───────────────────────────────────────────────
	var sessions auth.SessionRepository
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		sessions = auth.NewRedisSessionRepository(rdb)
		checks = append(checks, api.Check{
			Name: "redis",
			Run:  func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	} else {
		log.Warn("session_registry_in_memory", slog.String("reason", "REDIS_URL not set"))
		sessions = auth.NewMemorySessionRepository()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	authService := auth.NewService(
		auth.NewPasswordVerifier(auth.NewUserRepository(pool)),
		sessions,
		tokens,
		constants.SessionTTL,
		log,
	)

	sectionService := section.NewService(section.NewPostgresRepository(pool), log)
	productService := product.NewService(product.NewPostgresRepository(pool), sectionService, log)

	systemPrompt, err := chat.LoadSystemPrompt(cfg.ChatSystemPromptPath)
	must(log, err, "load chat system prompt")

	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = chat.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.ChatModel)
	} else {
		log.Warn("chat_disabled", slog.String("reason", "OPENAI_API_KEY not set"))
	}
	chatService := chat.NewService(completer, systemPrompt, log)

	liveness, readiness := api.NewHealthHandlers(log, checks...)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, stopServer := context.WithCancel(context.Background())
	defer stopServer()

	router := api.NewRouter(serverCtx, log, api.RouterOptions{
		Sessions:       authService,
		Origins:        cfg,
		TrustProxy:     cfg.TrustProxyHeaders,
		RateLimitRPS:   constants.DefaultRateLimitRPS,
		RateLimitBurst: constants.DefaultRateLimitBurst,
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, cfg.IsProduction()),
		Section:   section.NewHandler(sectionService),
		Product:   product.NewHandler(productService),
		Chat:      chat.NewHandler(chatService),
	})

	server := api.NewServer(":"+cfg.ServerPort, router, log)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the process JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
