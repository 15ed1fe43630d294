// Package main is the entrypoint for the trails API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trailatlas/trails-api/internal/api"
	"github.com/trailatlas/trails-api/internal/core/cache"
	"github.com/trailatlas/trails-api/internal/infrastructure/config"
	mongostore "github.com/trailatlas/trails-api/internal/infrastructure/db/mongo"
	"github.com/trailatlas/trails-api/internal/infrastructure/overpass"
	"github.com/trailatlas/trails-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URL:      cfg.Mongo.URL,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongostore.EnsureUserIndexes(ctx, db); err != nil {
		log.Error().Err(err).Msg("failed to create user indexes")
		os.Exit(1)
	}

	provider := overpass.NewClient(cfg.Overpass.URL, log)

	// One cache for the process lifetime, shared by all requests.
	queryCache := cache.New()

	e := api.NewRouter(db, provider, queryCache, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
