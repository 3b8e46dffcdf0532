package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexline/accounts-api/internal/api"
	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
	mongodb "github.com/nexline/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nexline/accounts-api/internal/infrastructure/db/redis"
	"github.com/nexline/accounts-api/internal/infrastructure/notify"
	"github.com/nexline/accounts-api/internal/infrastructure/queue"
	"github.com/nexline/accounts-api/internal/pkg/config"
	"github.com/nexline/accounts-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	if err := mongodb.NewRoleRepository(db).Seed(ctx, domain.RoleAdmin, domain.RoleCustomer, domain.RoleProvider); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Notifications ---
	var notifier ports.Notifier
	if cfg.Notify.Endpoint != "" {
		notifier = notify.NewHTTPNotifier(cfg.Notify.Endpoint, cfg.Notify.APIKey, cfg.Notify.Sender)
	} else {
		notifier = notify.NewLogNotifier(log)
	}
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notifier, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting accounts api")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
