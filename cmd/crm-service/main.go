// @title        CRM Service
// @version      1.0
// @description  Orders API guarded by sessions validated against the auth service.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/99minutos/sessionauth/docs/crm"
	"github.com/99minutos/sessionauth/internal/api"
	"github.com/99minutos/sessionauth/internal/api/handler"
	"github.com/99minutos/sessionauth/internal/api/metrics"
	"github.com/99minutos/sessionauth/internal/core/service"
	"github.com/99minutos/sessionauth/internal/infrastructure/authclient"
	"github.com/99minutos/sessionauth/internal/infrastructure/db/mongo"
	"github.com/99minutos/sessionauth/internal/pkg/config"
	"github.com/99minutos/sessionauth/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadCRM(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "crm-service"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Service: "crm-service",
		Level:   cfg.LogLevel,
		Pretty:  config.Pretty(cfg.Env),
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo ready")

	orderRepo := mongo.NewOrderRepository(db)
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("order indexes not created")
	}

	validator, err := authclient.New(authclient.Config{
		BaseURL: cfg.Auth.Internal,
		Timeout: cfg.Auth.ValidateTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth service address")
	}

	reg := metrics.NewRegistry()

	e, err := api.NewCRMRouter(api.CRMDeps{
		Validator: validator,
		Orders:    service.NewOrderService(orderRepo, log),
		LoginURL:  strings.TrimRight(cfg.Auth.External, "/") + "/login",
		Registry:  reg,
		Checks: map[string]handler.Checker{
			"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
		},
		Log: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("auth_internal", cfg.Auth.Internal).
		Str("auth_external", cfg.Auth.External).
		Msg("crm-service started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect")
	}

	log.Info().Msg("crm-service stopped cleanly")
}
