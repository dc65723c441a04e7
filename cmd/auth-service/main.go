// @title        Session Auth Service
// @version      1.0
// @description  Issues and validates short-lived session tokens.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	_ "github.com/99minutos/sessionauth/docs/auth"
	"github.com/99minutos/sessionauth/internal/api"
	"github.com/99minutos/sessionauth/internal/api/handler"
	"github.com/99minutos/sessionauth/internal/api/metrics"
	"github.com/99minutos/sessionauth/internal/core/service"
	"github.com/99minutos/sessionauth/internal/infrastructure/db/redis"
	"github.com/99minutos/sessionauth/internal/infrastructure/db/sqlite"
	"github.com/99minutos/sessionauth/internal/pkg/config"
	"github.com/99minutos/sessionauth/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAuth(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "auth-service"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Service: "auth-service",
		Level:   cfg.LogLevel,
		Pretty:  config.Pretty(cfg.Env),
	})

	passwords, err := service.NewPasswordScheme(cfg.PasswordScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid password scheme")
	}

	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open session database")
	}
	log.Info().Str("path", cfg.DBPath).Msg("session database ready")

	checks := map[string]handler.Checker{
		"sqlite": db.PingContext,
	}

	var (
		flash handler.FlashStore
		rdb   *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		flash = redis.NewFlashStore(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis flash store ready")
	}

	reg := metrics.NewRegistry()
	authMetrics := metrics.NewAuthMetrics(reg)

	authService := service.NewAuthService(
		sqlite.NewCredentialRepository(db),
		sqlite.NewSessionRepository(db),
		passwords,
		authMetrics,
		log,
	)

	e, err := api.NewAuthRouter(api.AuthDeps{
		Auth:     authService,
		Flash:    flash,
		CRMURL:   cfg.CRMURL,
		Metrics:  authMetrics,
		Gatherer: reg,
		Checks:   checks,
		Log:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("auth-service started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("session database close")
	}

	log.Info().Msg("auth-service stopped cleanly")
}
